package catalog

func init() {
	c = buildCatalog(seedRoles, seedResources, seedAliases)
}

// seedRoles defines the target roles and their required skill levels.
var seedRoles = []Role{
	{Name: "Data Scientist", Requirements: map[string]float64{
		"Python": 8, "Statistics": 8, "Machine Learning": 8,
		"SQL": 7, "Data Visualization": 6, "Deep Learning": 5,
	}},
	{Name: "ML Engineer", Requirements: map[string]float64{
		"Python": 9, "Machine Learning": 9, "Deep Learning": 8,
		"Docker": 6, "System Design": 6, "Statistics": 7,
	}},
	{Name: "Frontend Developer", Requirements: map[string]float64{
		"JavaScript": 9, "React": 8, "CSS": 7,
		"Git": 7, "Testing": 6, "APIs": 6,
	}},
	{Name: "Backend Developer", Requirements: map[string]float64{
		"Python": 8, "SQL": 8, "APIs": 8,
		"Docker": 6, "System Design": 7, "Testing": 7, "Git": 7,
	}},
	{Name: "Full Stack Developer", Requirements: map[string]float64{
		"JavaScript": 8, "React": 7, "Python": 7,
		"SQL": 7, "APIs": 7, "Git": 7, "Docker": 5,
	}},
	{Name: "AI Engineer", Requirements: map[string]float64{
		"Python": 9, "Deep Learning": 9, "Machine Learning": 9,
		"NLP": 7, "Computer Vision": 6, "Docker": 6, "System Design": 6,
	}},
	{Name: "Data Analyst", Requirements: map[string]float64{
		"SQL": 8, "Python": 6, "Statistics": 7,
		"Data Visualization": 8, "Machine Learning": 4,
	}},
	{Name: "DevOps Engineer", Requirements: map[string]float64{
		"Docker": 9, "Cloud Computing": 8, "Git": 8,
		"Python": 6, "System Design": 7, "Testing": 6,
	}},
}

// seedAliases maps a skill to the lowercase keywords that count as a
// mention of it in resume text.
var seedAliases = map[string][]string{
	"Python":             {"python", "django", "flask", "fastapi", "pandas", "numpy", "scipy", "streamlit"},
	"JavaScript":         {"javascript", "js", "typescript", "ts", "node.js", "nodejs", "express"},
	"React":              {"react", "reactjs", "react.js", "next.js", "nextjs", "redux"},
	"SQL":                {"sql", "mysql", "postgresql", "postgres", "sqlite", "oracle", "t-sql", "nosql", "mongodb"},
	"Machine Learning":   {"machine learning", "ml", "scikit-learn", "sklearn", "xgboost", "random forest", "logistic regression"},
	"Deep Learning":      {"deep learning", "neural network", "tensorflow", "pytorch", "keras", "cnn", "rnn", "lstm", "transformer"},
	"Statistics":         {"statistics", "statistical", "hypothesis testing", "regression analysis", "probability", "bayesian", "a/b testing"},
	"Data Visualization": {"data visualization", "matplotlib", "seaborn", "plotly", "d3.js", "tableau", "power bi", "grafana"},
	"Git":                {"git", "github", "gitlab", "version control", "bitbucket"},
	"Docker":             {"docker", "containerization", "kubernetes", "k8s", "docker-compose"},
	"AWS":                {"aws", "amazon web services", "ec2", "s3", "lambda", "sagemaker"},
	"CSS":                {"css", "sass", "scss", "tailwind", "bootstrap", "styled-components", "material ui"},
	"Testing":            {"testing", "unit test", "pytest", "jest", "selenium", "cypress", "tdd", "bdd"},
	"System Design":      {"system design", "architecture", "microservices", "distributed systems", "scalability", "load balancing"},
	"NLP":                {"nlp", "natural language processing", "text mining", "sentiment analysis", "hugging face", "bert", "gpt", "llm"},
	"Computer Vision":    {"computer vision", "opencv", "image processing", "object detection", "yolo", "image classification"},
	"APIs":               {"api", "rest", "restful", "graphql", "grpc", "fastapi", "swagger", "openapi"},
	"Cloud Computing":    {"cloud", "azure", "gcp", "google cloud", "cloud computing", "serverless"},
	"DevOps":             {"devops", "ci/cd", "jenkins", "github actions", "terraform", "ansible"},
	"Agile":              {"agile", "scrum", "kanban", "sprint", "jira", "project management"},
}

// seedResources holds curated learning resources per skill.
var seedResources = map[string][]Resource{
	"Python": {
		{Title: "Python for Everybody", Type: "Course", Duration: "4 weeks", Platform: "Coursera", URL: "https://coursera.org/specializations/python"},
		{Title: "Real Python Tutorials", Type: "Tutorials", Duration: "Self-paced", Platform: "realpython.com", URL: "https://realpython.com"},
		{Title: "Fluent Python (2nd ed.)", Type: "Book", Duration: "8 weeks", Platform: "O'Reilly", URL: "https://oreilly.com"},
	},
	"JavaScript": {
		{Title: "The Odin Project – JS Path", Type: "Course", Duration: "12 weeks", Platform: "theodinproject.com", URL: "https://theodinproject.com"},
		{Title: "JavaScript.info", Type: "Tutorials", Duration: "Self-paced", Platform: "javascript.info", URL: "https://javascript.info"},
	},
	"React": {
		{Title: "React – The Complete Guide", Type: "Course", Duration: "10 weeks", Platform: "Udemy", URL: "https://udemy.com"},
		{Title: "Official React Docs", Type: "Tutorials", Duration: "Self-paced", Platform: "react.dev", URL: "https://react.dev"},
	},
	"SQL": {
		{Title: "SQL for Data Science", Type: "Course", Duration: "4 weeks", Platform: "Coursera", URL: "https://coursera.org"},
		{Title: "Mode SQL Tutorial", Type: "Tutorials", Duration: "Self-paced", Platform: "mode.com", URL: "https://mode.com/sql-tutorial"},
	},
	"Statistics": {
		{Title: "Statistics & Probability – Khan Academy", Type: "Course", Duration: "6 weeks", Platform: "Khan Academy", URL: "https://khanacademy.org"},
		{Title: "Think Stats (free book)", Type: "Book", Duration: "4 weeks", Platform: "greenteapress.com", URL: "https://greenteapress.com/thinkstats"},
	},
	"Machine Learning": {
		{Title: "Machine Learning Specialization (Andrew Ng)", Type: "Course", Duration: "10 weeks", Platform: "Coursera", URL: "https://coursera.org/specializations/machine-learning-introduction"},
		{Title: "Hands-On ML with Scikit-Learn & TF", Type: "Book", Duration: "12 weeks", Platform: "O'Reilly", URL: "https://oreilly.com"},
	},
	"Deep Learning": {
		{Title: "Deep Learning Specialization", Type: "Course", Duration: "16 weeks", Platform: "Coursera", URL: "https://coursera.org/specializations/deep-learning"},
		{Title: "fast.ai Practical DL", Type: "Course", Duration: "7 weeks", Platform: "fast.ai", URL: "https://course.fast.ai"},
	},
	"Data Visualization": {
		{Title: "Data Visualization with Python", Type: "Course", Duration: "5 weeks", Platform: "Coursera", URL: "https://coursera.org"},
		{Title: "Storytelling with Data", Type: "Book", Duration: "3 weeks", Platform: "Amazon", URL: "https://storytellingwithdata.com"},
	},
	"Git": {
		{Title: "Git & GitHub Crash Course", Type: "Tutorials", Duration: "1 week", Platform: "YouTube / freeCodeCamp", URL: "https://youtube.com"},
		{Title: "Pro Git (free book)", Type: "Book", Duration: "2 weeks", Platform: "git-scm.com", URL: "https://git-scm.com/book"},
	},
	"Docker": {
		{Title: "Docker for Beginners", Type: "Course", Duration: "3 weeks", Platform: "KodeKloud", URL: "https://kodekloud.com"},
		{Title: "Docker Deep Dive", Type: "Book", Duration: "4 weeks", Platform: "Pluralsight", URL: "https://pluralsight.com"},
	},
	"CSS": {
		{Title: "CSS for JS Developers", Type: "Course", Duration: "6 weeks", Platform: "css-for-js.dev", URL: "https://css-for-js.dev"},
		{Title: "CSS Tricks", Type: "Tutorials", Duration: "Self-paced", Platform: "css-tricks.com", URL: "https://css-tricks.com"},
	},
	"Testing": {
		{Title: "Testing Python with pytest", Type: "Tutorials", Duration: "3 weeks", Platform: "realpython.com", URL: "https://realpython.com"},
		{Title: "Test-Driven Development by Example", Type: "Book", Duration: "4 weeks", Platform: "Amazon", URL: "https://amazon.com"},
	},
	"APIs": {
		{Title: "Designing RESTful APIs", Type: "Course", Duration: "3 weeks", Platform: "Udacity", URL: "https://udacity.com"},
		{Title: "FastAPI Official Tutorial", Type: "Tutorials", Duration: "1 week", Platform: "fastapi.tiangolo.com", URL: "https://fastapi.tiangolo.com/tutorial"},
	},
	"System Design": {
		{Title: "System Design Interview", Type: "Book", Duration: "6 weeks", Platform: "Amazon", URL: "https://amazon.com"},
		{Title: "Grokking System Design", Type: "Course", Duration: "8 weeks", Platform: "educative.io", URL: "https://educative.io"},
	},
	"NLP": {
		{Title: "HuggingFace NLP Course", Type: "Course", Duration: "4 weeks", Platform: "huggingface.co", URL: "https://huggingface.co/learn/nlp-course"},
		{Title: "Speech & Language Processing", Type: "Book", Duration: "12 weeks", Platform: "Stanford (free)", URL: "https://web.stanford.edu/~jurafsky/slp3"},
	},
	"Computer Vision": {
		{Title: "CS231n – CNNs for Visual Recognition", Type: "Course", Duration: "10 weeks", Platform: "Stanford (free)", URL: "https://cs231n.stanford.edu"},
	},
	"Cloud Computing": {
		{Title: "AWS Cloud Practitioner Essentials", Type: "Course", Duration: "4 weeks", Platform: "AWS", URL: "https://aws.amazon.com/training"},
		{Title: "Google Cloud Fundamentals", Type: "Course", Duration: "4 weeks", Platform: "Coursera", URL: "https://coursera.org"},
	},
	"DevOps": {
		{Title: "DevOps with Docker, K8s & Terraform", Type: "Course", Duration: "8 weeks", Platform: "Udemy", URL: "https://udemy.com"},
	},
	"Agile": {
		{Title: "Agile with Atlassian Jira", Type: "Course", Duration: "2 weeks", Platform: "Coursera", URL: "https://coursera.org"},
	},
	"AWS": {
		{Title: "AWS Solutions Architect Associate", Type: "Course", Duration: "8 weeks", Platform: "A Cloud Guru", URL: "https://acloudguru.com"},
	},
}
