package interview

// Difficulty is the coding-question tier derived from a candidate's
// experience level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ScenarioTheme names a bucket of behavioral questions.
type ScenarioTheme string

const (
	ThemeLeadership         ScenarioTheme = "leadership"
	ThemeProblemSolving     ScenarioTheme = "problem_solving"
	ThemeCommunication      ScenarioTheme = "communication"
	ThemeSalesforceSpecific ScenarioTheme = "salesforce_specific"
	ThemeAnalystSpecific    ScenarioTheme = "analyst_specific"
)

// Bank is the static interview question catalog. It is built once at
// process start and read concurrently without synchronization.
type Bank struct {
	Coding       map[Difficulty][]string
	RoleSpecific map[RoleCategory][]string
	Scenario     map[ScenarioTheme][]string
}

func (b *Bank) codingBucket(d Difficulty) []string {
	if b == nil {
		return nil
	}
	return b.Coding[d]
}

func (b *Bank) roleBucket(rc RoleCategory) []string {
	if b == nil {
		return nil
	}
	return b.RoleSpecific[rc]
}

func (b *Bank) scenarioBucket(t ScenarioTheme) []string {
	if b == nil {
		return nil
	}
	return b.Scenario[t]
}

// DefaultBank returns the built-in question catalog.
func DefaultBank() *Bank {
	return &Bank{
		Coding: map[Difficulty][]string{
			DifficultyBeginner: {
				"Write a function to reverse a string without using built-in reverse methods.",
				"Implement a function to check if a number is prime.",
				"Write a program to find the factorial of a number using recursion.",
				"Create a function to find the largest element in an array.",
				"Implement a simple calculator that can add, subtract, multiply, and divide.",
			},
			DifficultyIntermediate: {
				"Implement a binary search algorithm and explain its time complexity.",
				"Write a function to detect if a linked list has a cycle.",
				"Implement a stack using arrays and demonstrate its operations.",
				"Create a function to find all permutations of a string.",
				"Write a program to implement merge sort algorithm.",
			},
			DifficultyAdvanced: {
				"Design and implement a LRU (Least Recently Used) cache.",
				"Implement a trie data structure for autocomplete functionality.",
				"Write a function to find the shortest path in a weighted graph using Dijkstra's algorithm.",
				"Design a system to handle millions of concurrent users.",
				"Implement a distributed hash table with consistent hashing.",
			},
		},
		RoleSpecific: map[RoleCategory][]string{
			RoleSalesforceAdmin: {
				"How would you design a custom object structure for a sales pipeline tracking system in Salesforce?",
				"Explain the difference between Role Hierarchy and Sharing Rules. When would you use each?",
				"Walk me through creating a validation rule to ensure data quality in opportunity records.",
				"How would you set up an approval process for expense reports with multiple approval levels?",
				"Describe how you would use Process Builder vs Flow vs Workflow Rules for automation.",
				"How would you handle data migration from a legacy CRM to Salesforce while maintaining data integrity?",
				"Explain how you would configure territory management for a global sales organization.",
				"How would you create custom reports and dashboards to track sales performance KPIs?",
			},
			RoleSalesforceDeveloper: {
				"Write an Apex trigger to prevent duplicate account creation based on email domain.",
				"How would you implement bulk data processing in Apex while avoiding governor limits?",
				"Explain the difference between SOQL and SOSL. Provide examples of when to use each.",
				"Design a Lightning Web Component for a custom opportunity management interface.",
				"How would you implement custom REST API endpoints in Salesforce for external integrations?",
				"Describe how you would use Platform Events for real-time data synchronization.",
				"Explain the MVC pattern in Salesforce development and how it applies to Lightning components.",
				"How would you optimize SOQL queries for better performance in large data sets?",
			},
			RoleProgramAnalyst: {
				"How would you approach analyzing business requirements for a new software implementation?",
				"Describe your process for conducting stakeholder interviews to gather functional requirements.",
				"How would you create and maintain a requirements traceability matrix for a large project?",
				"Explain how you would perform gap analysis between current state and future state processes.",
				"How would you facilitate workshops to resolve conflicting requirements from different departments?",
				"Describe your approach to creating user stories and acceptance criteria for development teams.",
				"How would you measure and report on project KPIs and success metrics?",
				"Explain how you would conduct risk assessment and mitigation planning for program initiatives.",
			},
			RoleJavaFullstack: {
				"Design a RESTful API using Spring Boot for a microservices architecture.",
				"Explain the difference between @Component, @Service, and @Repository annotations in Spring.",
				"How would you implement JWT-based authentication in a Spring Boot application?",
				"Describe how you would optimize JPA/Hibernate queries for better database performance.",
				"How would you implement caching strategies using Redis in a Java application?",
				"Explain how you would handle concurrent requests and thread safety in a Java web application.",
				"Describe the implementation of a message queue system using RabbitMQ or Apache Kafka.",
				"How would you implement unit testing for a Spring Boot application using JUnit and Mockito?",
			},
			RolePythonFullstack: {
				"Design a RESTful API using Django REST Framework with proper serialization and validation.",
				"Explain how you would implement async/await patterns in Python for handling concurrent requests.",
				"How would you structure a Django project for scalability and maintainability?",
				"Describe how you would implement caching strategies using Redis with Django.",
				"How would you handle database migrations and schema changes in a production Django application?",
				"Explain how you would implement OAuth2 authentication using Django and social auth.",
				"Describe how you would optimize Python code for better performance in data-heavy applications.",
				"How would you implement background task processing using Celery with Django?",
			},
			RoleDotnetFullstack: {
				"Design a Web API using ASP.NET Core with proper dependency injection and middleware.",
				"Explain the difference between .NET Core and .NET Framework, and when to use each.",
				"How would you implement Entity Framework Core with Code First migrations?",
				"Describe how you would implement authentication and authorization using ASP.NET Core Identity.",
				"How would you handle error handling and logging in a .NET Core application?",
				"Explain how you would implement SignalR for real-time communication features.",
				"Describe how you would optimize .NET applications for performance and memory management.",
				"How would you implement unit testing using xUnit and Moq in a .NET Core project?",
			},
		},
		Scenario: map[ScenarioTheme][]string{
			ThemeLeadership: {
				"Describe a time when you had to lead a team through a difficult project. How did you motivate your team?",
				"How would you handle a situation where team members have conflicting opinions on a technical approach?",
				"Tell me about a time when you had to make a difficult decision with limited information.",
				"How do you ensure effective communication within your team?",
				"Describe how you would handle an underperforming team member.",
			},
			ThemeProblemSolving: {
				"Walk me through how you would debug a system that's running slowly in production.",
				"How would you approach designing a new feature with unclear requirements?",
				"Describe a complex technical problem you solved and your approach.",
				"How do you prioritize tasks when everything seems urgent?",
				"Tell me about a time when you had to learn a new technology quickly.",
			},
			ThemeCommunication: {
				"How would you explain a complex technical concept to a non-technical stakeholder?",
				"Describe a time when you had to give difficult feedback to a colleague.",
				"How do you handle disagreements during code reviews?",
				"Tell me about a presentation you gave and how you prepared for it.",
				"How do you ensure your written communication is clear and effective?",
			},
			ThemeSalesforceSpecific: {
				"How would you explain the benefits of Salesforce automation to a non-technical business user?",
				"Describe a time when you had to troubleshoot a complex Salesforce integration issue.",
				"How would you approach training end users on a new Salesforce feature you implemented?",
				"Tell me about a time when you had to balance technical constraints with business requirements.",
				"How would you handle a situation where a business user requests a customization that goes against best practices?",
			},
			ThemeAnalystSpecific: {
				"Describe how you would handle conflicting requirements from different stakeholders.",
				"How would you approach documenting complex business processes for technical implementation?",
				"Tell me about a time when your analysis revealed unexpected insights that changed project direction.",
				"How would you present technical recommendations to executive-level stakeholders?",
				"Describe your approach to quality assurance and testing coordination.",
			},
		},
	}
}
