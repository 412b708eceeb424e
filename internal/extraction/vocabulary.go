package extraction

// technicalSkills is the dictionary used for skill matching, in canonical
// display casing. Matching is case-insensitive on word boundaries; the order
// here fixes the order skills appear in results.
var technicalSkills = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust",
	"Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "Shell", "Bash", "PowerShell",

	// Web technologies
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask",
	"Spring", "Laravel", "Rails", "ASP.NET", "Blazor", "Next.js", "Nuxt.js",

	// Databases
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra",
	"DynamoDB", "Oracle", "SQLite", "MariaDB", "Neo4j",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub", "GitLab",
	"Terraform", "Ansible", "Chef", "Puppet", "Vagrant", "CI/CD",

	// Data science and AI
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "scikit-learn",
	"Pandas", "NumPy", "Spark", "Hadoop", "Kafka", "Airflow",

	// Tools and frameworks
	"Jira", "Confluence", "Slack", "Linux", "Windows", "macOS", "Vim", "VSCode",
	"IntelliJ", "Eclipse", "Postman", "Swagger", "GraphQL", "REST API",
}
