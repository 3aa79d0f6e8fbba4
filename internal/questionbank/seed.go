package questionbank

func init() {
	b = buildBank(seedQuestions)
}

// seedQuestions is the static MCQ catalog, organized skill-major in tier
// order. Every skill that appears in a role requirement should have at
// least one question per tier it can be asked at; gaps are tolerated at
// lookup time.
var seedQuestions = []Question{
	// ---- Python ----
	{Skill: "Python", Difficulty: Beginner, Text: "What is the output of print(type([]))?",
		Options: []string{"<class 'list'>", "<class 'tuple'>", "<class 'dict'>", "<class 'set'>"}, CorrectIndex: 0},
	{Skill: "Python", Difficulty: Beginner, Text: "Which keyword defines a function in Python?",
		Options: []string{"func", "define", "def", "function"}, CorrectIndex: 2},
	{Skill: "Python", Difficulty: Beginner, Text: "What does len('Hello') return?",
		Options: []string{"4", "5", "6", "Error"}, CorrectIndex: 1},
	{Skill: "Python", Difficulty: Intermediate, Text: "What is a list comprehension used for?",
		Options: []string{"Sorting a list", "Creating a list from an iterable in one line", "Compressing a list into bytes", "Deleting list elements"}, CorrectIndex: 1},
	{Skill: "Python", Difficulty: Intermediate, Text: "What does the 'yield' keyword do?",
		Options: []string{"Stops the function permanently", "Returns a value and pauses the generator", "Raises an exception", "Creates a new thread"}, CorrectIndex: 1},
	{Skill: "Python", Difficulty: Intermediate, Text: "Tuples differ from lists because tuples are…",
		Options: []string{"Mutable", "Immutable", "Unordered", "Only for numbers"}, CorrectIndex: 1},
	{Skill: "Python", Difficulty: Advanced, Text: "What is a decorator in Python?",
		Options: []string{"A CSS styling tool", "A function that wraps another function to extend its behavior", "A type of variable", "A loop construct"}, CorrectIndex: 1},
	{Skill: "Python", Difficulty: Advanced, Text: "What is the GIL?",
		Options: []string{"Global Import Library", "General Interface Layer", "Global Interpreter Lock — limits true multi-threading", "Graphical Interaction Loop"}, CorrectIndex: 2},
	{Skill: "Python", Difficulty: Expert, Text: "What is a metaclass in Python?",
		Options: []string{"A class that creates classes", "A subclass of object", "A type of decorator", "A module system"}, CorrectIndex: 0},

	// ---- JavaScript ----
	{Skill: "JavaScript", Difficulty: Beginner, Text: "Which company developed JavaScript?",
		Options: []string{"Microsoft", "Netscape", "Google", "Apple"}, CorrectIndex: 1},
	{Skill: "JavaScript", Difficulty: Beginner, Text: "How do you declare a variable that cannot be reassigned?",
		Options: []string{"var x", "let x", "const x", "static x"}, CorrectIndex: 2},
	{Skill: "JavaScript", Difficulty: Intermediate, Text: "What does '===' check?",
		Options: []string{"Value only", "Type only", "Value and type", "Reference"}, CorrectIndex: 2},
	{Skill: "JavaScript", Difficulty: Intermediate, Text: "What is a closure?",
		Options: []string{"A function with access to its outer scope variables", "A terminated process", "A CSS animation", "A data type"}, CorrectIndex: 0},
	{Skill: "JavaScript", Difficulty: Advanced, Text: "What is the event loop in JavaScript?",
		Options: []string{"A for-loop variant", "Mechanism that handles async callbacks on a single thread", "A DOM event handler", "A CSS animation loop"}, CorrectIndex: 1},
	{Skill: "JavaScript", Difficulty: Expert, Text: "What is the Temporal Dead Zone (TDZ)?",
		Options: []string{"Region where let/const is declared but not yet initialised", "A memory leak area", "A deprecated API zone", "A testing timeout"}, CorrectIndex: 0},

	// ---- SQL ----
	{Skill: "SQL", Difficulty: Beginner, Text: "Which SQL clause filters rows?",
		Options: []string{"SELECT", "WHERE", "ORDER BY", "GROUP BY"}, CorrectIndex: 1},
	{Skill: "SQL", Difficulty: Beginner, Text: "What does SELECT DISTINCT do?",
		Options: []string{"Selects all rows", "Removes duplicate rows", "Sorts results", "Limits output"}, CorrectIndex: 1},
	{Skill: "SQL", Difficulty: Intermediate, Text: "What is the difference between INNER JOIN and LEFT JOIN?",
		Options: []string{"No difference", "LEFT JOIN includes unmatched left-table rows", "INNER JOIN includes NULLs", "LEFT JOIN is faster"}, CorrectIndex: 1},
	{Skill: "SQL", Difficulty: Intermediate, Text: "What does GROUP BY do?",
		Options: []string{"Sorts data", "Groups rows sharing a value for aggregate functions", "Filters groups", "Joins tables"}, CorrectIndex: 1},
	{Skill: "SQL", Difficulty: Advanced, Text: "What is a window function?",
		Options: []string{"Performs calculation across a set of rows related to the current row", "Opens a new database window", "A GUI element", "A type of index"}, CorrectIndex: 0},
	{Skill: "SQL", Difficulty: Expert, Text: "What is a CTE (Common Table Expression)?",
		Options: []string{"A permanent table", "A temporary named result set scoped to a single query", "A stored procedure", "A view"}, CorrectIndex: 1},

	// ---- Machine Learning ----
	{Skill: "Machine Learning", Difficulty: Beginner, Text: "What is supervised learning?",
		Options: []string{"Learning without labels", "Learning with labelled data", "Reinforcement learning", "Unsupervised clustering"}, CorrectIndex: 1},
	{Skill: "Machine Learning", Difficulty: Beginner, Text: "What is overfitting?",
		Options: []string{"Model learns noise and performs poorly on new data", "Model is too simple", "Training takes too long", "Data is missing"}, CorrectIndex: 0},
	{Skill: "Machine Learning", Difficulty: Intermediate, Text: "What is cross-validation?",
		Options: []string{"Training on all data", "Splitting data into folds to validate model performance", "Testing in production", "Data augmentation"}, CorrectIndex: 1},
	{Skill: "Machine Learning", Difficulty: Intermediate, Text: "What does regularisation do?",
		Options: []string{"Speeds training", "Prevents overfitting by penalising large coefficients", "Increases model complexity", "Normalises data"}, CorrectIndex: 1},
	{Skill: "Machine Learning", Difficulty: Advanced, Text: "What is gradient descent?",
		Options: []string{"A data structure", "Iterative optimisation to minimise a loss function", "A neural network layer", "A feature selection method"}, CorrectIndex: 1},
	{Skill: "Machine Learning", Difficulty: Expert, Text: "What is the bias-variance tradeoff?",
		Options: []string{"Balancing model complexity: low bias ↔ high variance", "Balancing dataset size", "Choosing learning rate", "Selecting features"}, CorrectIndex: 0},

	// ---- Statistics ----
	{Skill: "Statistics", Difficulty: Beginner, Text: "What is the mean of [2, 4, 6]?",
		Options: []string{"2", "4", "6", "12"}, CorrectIndex: 1},
	{Skill: "Statistics", Difficulty: Beginner, Text: "What does standard deviation measure?",
		Options: []string{"Central tendency", "Spread of data", "Skewness", "Kurtosis"}, CorrectIndex: 1},
	{Skill: "Statistics", Difficulty: Intermediate, Text: "What is a p-value?",
		Options: []string{"Probability of observing results at least as extreme, assuming H0 is true", "The population mean", "A data point", "A coefficient"}, CorrectIndex: 0},
	{Skill: "Statistics", Difficulty: Advanced, Text: "What is Bayes' theorem used for?",
		Options: []string{"Calculating posterior probability from prior and likelihood", "Sorting data", "Feature scaling", "Dimensionality reduction"}, CorrectIndex: 0},
	{Skill: "Statistics", Difficulty: Expert, Text: "When is a bootstrap method preferred over parametric tests?",
		Options: []string{"When distribution assumptions are hard to verify", "When data is normally distributed", "When sample size is large", "Always"}, CorrectIndex: 0},

	// ---- React ----
	{Skill: "React", Difficulty: Beginner, Text: "What is JSX?",
		Options: []string{"A database", "JavaScript XML — syntax extension for React", "A CSS framework", "A REST API"}, CorrectIndex: 1},
	{Skill: "React", Difficulty: Intermediate, Text: "What does useState return?",
		Options: []string{"A boolean", "An array with [state, setter]", "A promise", "A DOM node"}, CorrectIndex: 1},
	{Skill: "React", Difficulty: Advanced, Text: "What is React.memo used for?",
		Options: []string{"State management", "Memoising a component to prevent unnecessary re-renders", "Routing", "Server-side rendering"}, CorrectIndex: 1},
	{Skill: "React", Difficulty: Expert, Text: "What problem does React Server Components solve?",
		Options: []string{"Reduces client bundle size by rendering on the server", "Replaces Redux", "Improves CSS", "Handles authentication"}, CorrectIndex: 0},

	// ---- Deep Learning ----
	{Skill: "Deep Learning", Difficulty: Beginner, Text: "What is a neural network?",
		Options: []string{"A computer network", "A model inspired by the human brain with layers of nodes", "A graph database", "A sorting algorithm"}, CorrectIndex: 1},
	{Skill: "Deep Learning", Difficulty: Intermediate, Text: "What is backpropagation?",
		Options: []string{"Forward data flow", "Algorithm to compute gradients for weight updates", "A data augmentation technique", "A regularisation method"}, CorrectIndex: 1},
	{Skill: "Deep Learning", Difficulty: Advanced, Text: "What problem do LSTMs solve that vanilla RNNs struggle with?",
		Options: []string{"Over-parameterisation", "Long-range dependency / vanishing gradient", "Data preprocessing", "Batch normalisation"}, CorrectIndex: 1},
	{Skill: "Deep Learning", Difficulty: Expert, Text: "What is the key innovation of the Transformer architecture?",
		Options: []string{"Self-attention mechanism replacing recurrence", "Convolutional layers", "Skip connections only", "Pooling layers"}, CorrectIndex: 0},

	// ---- Docker ----
	{Skill: "Docker", Difficulty: Beginner, Text: "What is a Docker container?",
		Options: []string{"A virtual machine", "A lightweight, isolated runtime environment", "A programming language", "A database"}, CorrectIndex: 1},
	{Skill: "Docker", Difficulty: Intermediate, Text: "What is a Dockerfile?",
		Options: []string{"A running container", "A script with instructions to build a Docker image", "A YAML config file", "A network bridge"}, CorrectIndex: 1},
	{Skill: "Docker", Difficulty: Advanced, Text: "What is Docker Compose used for?",
		Options: []string{"Writing Dockerfiles", "Defining and running multi-container applications", "Container security scanning", "Image compression"}, CorrectIndex: 1},
	{Skill: "Docker", Difficulty: Expert, Text: "What is a multi-stage build?",
		Options: []string{"Using multiple FROM statements to reduce final image size", "Running containers in stages", "A CI pipeline", "A swarm mode feature"}, CorrectIndex: 0},

	// ---- Git ----
	{Skill: "Git", Difficulty: Beginner, Text: "What does 'git commit' do?",
		Options: []string{"Uploads code to GitHub", "Saves staged changes to the local repository", "Deletes a branch", "Merges branches"}, CorrectIndex: 1},
	{Skill: "Git", Difficulty: Intermediate, Text: "What is 'git rebase' used for?",
		Options: []string{"Deleting commits", "Re-applying commits on top of another base tip", "Creating a tag", "Initialising a repo"}, CorrectIndex: 1},
	{Skill: "Git", Difficulty: Advanced, Text: "What is a Git hook?",
		Options: []string{"A branch naming convention", "A script triggered by Git events like commit or push", "A merge strategy", "A remote alias"}, CorrectIndex: 1},

	// ---- Testing ----
	{Skill: "Testing", Difficulty: Beginner, Text: "What is a unit test?",
		Options: []string{"Testing the full app", "Testing a single function or component in isolation", "Performance testing", "Security testing"}, CorrectIndex: 1},
	{Skill: "Testing", Difficulty: Intermediate, Text: "What is mocking?",
		Options: []string{"Removing tests", "Replacing real objects with simulated ones for testing", "Writing documentation", "Code formatting"}, CorrectIndex: 1},
	{Skill: "Testing", Difficulty: Advanced, Text: "What is TDD (Test-Driven Development)?",
		Options: []string{"Writing tests after code", "Writing tests before code, then making them pass", "A debugging tool", "A deployment strategy"}, CorrectIndex: 1},

	// ---- CSS ----
	{Skill: "CSS", Difficulty: Beginner, Text: "What does CSS stand for?",
		Options: []string{"Cascading Style Sheets", "Computer Style Sheets", "Creative Style Syntax", "Coded Style Sheets"}, CorrectIndex: 0},
	{Skill: "CSS", Difficulty: Intermediate, Text: "What is Flexbox?",
		Options: []string{"A JavaScript library", "A CSS layout model for arranging items in one dimension", "A grid framework", "A font system"}, CorrectIndex: 1},
	{Skill: "CSS", Difficulty: Advanced, Text: "What is CSS specificity?",
		Options: []string{"How fast CSS loads", "Rules determining which styles override others based on selectors", "A responsiveness metric", "A colour model"}, CorrectIndex: 1},

	// ---- APIs ----
	{Skill: "APIs", Difficulty: Beginner, Text: "What does REST stand for?",
		Options: []string{"Representational State Transfer", "Remote Execution Standard Technology", "Real-time Event Streaming", "Resource Exchange Protocol"}, CorrectIndex: 0},
	{Skill: "APIs", Difficulty: Intermediate, Text: "What HTTP method is used to update a resource?",
		Options: []string{"GET", "POST", "PUT", "DELETE"}, CorrectIndex: 2},
	{Skill: "APIs", Difficulty: Advanced, Text: "What is the key advantage of GraphQL over REST?",
		Options: []string{"Faster network", "Clients request exactly the data they need", "Built-in authentication", "No server needed"}, CorrectIndex: 1},

	// ---- System Design ----
	{Skill: "System Design", Difficulty: Beginner, Text: "What is horizontal scaling?",
		Options: []string{"Adding more powerful hardware", "Adding more machines to distribute load", "Increasing memory", "Using a CDN"}, CorrectIndex: 1},
	{Skill: "System Design", Difficulty: Intermediate, Text: "What is a load balancer?",
		Options: []string{"A database index", "Distributes incoming traffic across servers", "A caching layer", "A message queue"}, CorrectIndex: 1},
	{Skill: "System Design", Difficulty: Advanced, Text: "What is the CAP theorem?",
		Options: []string{"A distributed system can guarantee at most 2 of: Consistency, Availability, Partition tolerance", "A sorting algorithm", "A network protocol", "A testing principle"}, CorrectIndex: 0},

	// ---- NLP ----
	{Skill: "NLP", Difficulty: Beginner, Text: "What does NLP stand for?",
		Options: []string{"Natural Language Processing", "Neural Layer Protocol", "Non-Linear Programming", "New Language Parser"}, CorrectIndex: 0},
	{Skill: "NLP", Difficulty: Intermediate, Text: "What is tokenisation?",
		Options: []string{"Encrypting data", "Splitting text into smaller units (tokens)", "Generating random text", "Translating languages"}, CorrectIndex: 1},
	{Skill: "NLP", Difficulty: Advanced, Text: "What is attention in NLP models?",
		Options: []string{"A loss function", "Mechanism that lets the model focus on relevant parts of input", "A data augmentation step", "A regularisation technique"}, CorrectIndex: 1},

	// ---- Computer Vision ----
	{Skill: "Computer Vision", Difficulty: Beginner, Text: "What is a convolution in CNNs?",
		Options: []string{"A fully connected layer", "Applying a filter/kernel across an image to detect features", "A pooling operation", "An activation function"}, CorrectIndex: 1},
	{Skill: "Computer Vision", Difficulty: Intermediate, Text: "What is transfer learning?",
		Options: []string{"Training from scratch", "Reusing a pre-trained model for a new task", "Data augmentation", "Feature scaling"}, CorrectIndex: 1},
	{Skill: "Computer Vision", Difficulty: Advanced, Text: "What is an anchor box in object detection?",
		Options: []string{"A bounding box template used to predict object locations", "A type of activation function", "A loss function", "A data augmentation method"}, CorrectIndex: 0},

	// ---- Data Visualization ----
	{Skill: "Data Visualization", Difficulty: Beginner, Text: "When should you use a bar chart?",
		Options: []string{"Comparing categories", "Showing trends over time", "Showing proportions", "Showing correlations"}, CorrectIndex: 0},
	{Skill: "Data Visualization", Difficulty: Intermediate, Text: "What is a heatmap best used for?",
		Options: []string{"Showing geographic data", "Showing magnitude as colour in a matrix", "Animating bar charts", "3D rendering"}, CorrectIndex: 1},
	{Skill: "Data Visualization", Difficulty: Advanced, Text: "What principle prevents chartjunk?",
		Options: []string{"Maximise data-ink ratio (Tufte)", "Use 3D effects", "Add grid lines everywhere", "Use bright colours"}, CorrectIndex: 0},

	// ---- Cloud Computing ----
	{Skill: "Cloud Computing", Difficulty: Beginner, Text: "What does IaaS stand for?",
		Options: []string{"Infrastructure as a Service", "Internet as a Service", "Integration as a Service", "Intelligence as a Service"}, CorrectIndex: 0},
	{Skill: "Cloud Computing", Difficulty: Intermediate, Text: "What is serverless computing?",
		Options: []string{"No servers exist", "Cloud provider manages servers; you deploy functions", "On-premise only", "A containerisation method"}, CorrectIndex: 1},
	{Skill: "Cloud Computing", Difficulty: Advanced, Text: "What is a VPC?",
		Options: []string{"Virtual Private Cloud — isolated network within the cloud", "Virtual Processing Core", "Variable Pricing Calculator", "Version-controlled Pipeline Configuration"}, CorrectIndex: 0},

	// ---- DevOps ----
	{Skill: "DevOps", Difficulty: Beginner, Text: "What does CI/CD stand for?",
		Options: []string{"Continuous Integration / Continuous Delivery", "Code Inspection / Code Deployment", "Container Integration / Container Distribution", "Cloud Infrastructure / Cloud Deployment"}, CorrectIndex: 0},
	{Skill: "DevOps", Difficulty: Intermediate, Text: "What is Infrastructure as Code (IaC)?",
		Options: []string{"Manually configuring servers", "Managing infrastructure through code and version control", "Writing application code", "A monitoring tool"}, CorrectIndex: 1},
	{Skill: "DevOps", Difficulty: Advanced, Text: "What is a canary deployment?",
		Options: []string{"Rolling out changes to a small subset of users before full release", "Deploying to all users at once", "A rollback strategy", "A load testing method"}, CorrectIndex: 0},
}
