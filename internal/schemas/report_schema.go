package schemas

// evaluationReportSchema is the JSON Schema every generated evaluation report
// must satisfy before it leaves the service.
const evaluationReportSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "EvaluationReport",
  "type": "object",
  "required": [
    "overall_score",
    "profile_tier",
    "summary_statement",
    "strengths",
    "weaknesses",
    "recommendations",
    "skills_evaluation",
    "experience_evaluation",
    "structure_evaluation",
    "next_steps",
    "evaluation_criteria"
  ],
  "properties": {
    "overall_score": {
      "type": "integer",
      "minimum": 0,
      "maximum": 100
    },
    "profile_tier": {
      "type": "string",
      "enum": ["Strong Profile", "Moderate Profile", "Developing Profile", "Incomplete"]
    },
    "summary_statement": {
      "type": "string",
      "minLength": 1
    },
    "strengths": {
      "type": "array",
      "items": { "type": "string" },
      "maxItems": 6
    },
    "weaknesses": {
      "type": "array",
      "items": { "type": "string" },
      "maxItems": 5
    },
    "recommendations": {
      "type": "array",
      "items": { "type": "string" },
      "maxItems": 6
    },
    "skills_evaluation": { "$ref": "#/definitions/section" },
    "experience_evaluation": { "$ref": "#/definitions/section" },
    "structure_evaluation": { "$ref": "#/definitions/section" },
    "next_steps": {
      "type": "array",
      "items": { "type": "string" },
      "maxItems": 4
    },
    "evaluation_criteria": {
      "type": "object",
      "additionalProperties": { "type": "string" }
    }
  },
  "definitions": {
    "section": {
      "type": "object",
      "required": ["title", "content"],
      "properties": {
        "title": { "type": "string" },
        "content": {
          "type": "array",
          "items": { "type": "string" }
        },
        "priority_level": {
          "type": "string",
          "enum": ["high", "medium", "low", ""]
        }
      }
    }
  }
}`
