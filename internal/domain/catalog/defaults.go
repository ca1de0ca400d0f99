package catalog

// Defaults returns the built-in reference tables.
func Defaults() Tables {
	return Tables{
		Roles:              defaultRoles(),
		Market:             defaultMarket(),
		Courses:            defaultCourses(),
		Roadmaps:           defaultRoadmaps(),
		InterviewQuestions: defaultInterviewQuestions(),
		News:               defaultNews(),
	}
}

func defaultRoles() []Role {
	return []Role{
		{Name: "Data Engineer", Requirements: []SkillRequirement{
			{Skill: "Python", Level: 4}, {Skill: "SQL", Level: 4}, {Skill: "Cloud", Level: 4}, {Skill: "ETL", Level: 3},
		}},
		{Name: "AI Specialist", Requirements: []SkillRequirement{
			{Skill: "Python", Level: 5}, {Skill: "ML", Level: 5}, {Skill: "TensorFlow", Level: 4},
		}},
		{Name: "Cloud Architect", Requirements: []SkillRequirement{
			{Skill: "Cloud", Level: 5}, {Skill: "Networking", Level: 4}, {Skill: "Security", Level: 4},
		}},
		{Name: "Data Scientist", Requirements: []SkillRequirement{
			{Skill: "Python", Level: 5}, {Skill: "ML", Level: 5}, {Skill: "SQL", Level: 4}, {Skill: "Statistics", Level: 4},
		}},
		{Name: "DevOps Engineer", Requirements: []SkillRequirement{
			{Skill: "Cloud", Level: 5}, {Skill: "Python", Level: 4}, {Skill: "Linux", Level: 4}, {Skill: "CI/CD", Level: 4},
		}},
		{Name: "Cybersecurity Analyst", Requirements: []SkillRequirement{
			{Skill: "Networking", Level: 5}, {Skill: "Security", Level: 5}, {Skill: "Python", Level: 3}, {Skill: "Risk Assessment", Level: 4},
		}},
		{Name: "Full-Stack Developer", Requirements: []SkillRequirement{
			{Skill: "Python", Level: 4}, {Skill: "JavaScript", Level: 5}, {Skill: "React", Level: 4}, {Skill: "SQL", Level: 3},
		}},
		{Name: "Product Manager", Requirements: []SkillRequirement{
			{Skill: "Communication", Level: 5}, {Skill: "Agile", Level: 4}, {Skill: "Analytics", Level: 4}, {Skill: "Leadership", Level: 5},
		}},
	}
}

func defaultMarket() []JobMarketStat {
	return []JobMarketStat{
		{Role: "Data Engineer", AvgSalary: 95000, GrowthRate: 15, Demand: 85},
		{Role: "AI Specialist", AvgSalary: 120000, GrowthRate: 25, Demand: 90},
		{Role: "Cloud Architect", AvgSalary: 110000, GrowthRate: 20, Demand: 80},
		{Role: "Data Scientist", AvgSalary: 115000, GrowthRate: 22, Demand: 88},
		{Role: "DevOps Engineer", AvgSalary: 105000, GrowthRate: 18, Demand: 82},
		{Role: "Cybersecurity Analyst", AvgSalary: 100000, GrowthRate: 20, Demand: 87},
		{Role: "Full-Stack Developer", AvgSalary: 98000, GrowthRate: 17, Demand: 83},
		{Role: "Product Manager", AvgSalary: 130000, GrowthRate: 23, Demand: 89},
	}
}

func defaultCourses() []Course {
	return []Course{
		{Skill: "Python", Name: "Advanced Python", Platform: "Coursera", Duration: "6w"},
		{Skill: "Cloud", Name: "AWS Certified", Platform: "Udacity", Duration: "8w"},
		{Skill: "ML", Name: "ML Bootcamp", Platform: "edX", Duration: "10w"},
		{Skill: "SQL", Name: "SQL Mastery", Platform: "Udemy", Duration: "4w"},
		{Skill: "TensorFlow", Name: "TensorFlow Pro", Platform: "Pluralsight", Duration: "6w"},
		{Skill: "ETL", Name: "ETL Fundamentals", Platform: "LinkedIn Learning", Duration: "5w"},
		{Skill: "Statistics", Name: "Statistics for Data Science", Platform: "Coursera", Duration: "7w"},
		{Skill: "Linux", Name: "Linux Administration", Platform: "Udacity", Duration: "6w"},
		{Skill: "CI/CD", Name: "CI/CD with Jenkins", Platform: "Pluralsight", Duration: "4w"},
		{Skill: "Networking", Name: "Networking Essentials", Platform: "edX", Duration: "5w"},
		{Skill: "Security", Name: "Cybersecurity Fundamentals", Platform: "Udemy", Duration: "7w"},
		{Skill: "Risk Assessment", Name: "Risk Management in IT", Platform: "LinkedIn Learning", Duration: "5w"},
		{Skill: "JavaScript", Name: "JavaScript Deep Dive", Platform: "Udacity", Duration: "6w"},
		{Skill: "React", Name: "React from Scratch", Platform: "Coursera", Duration: "6w"},
		{Skill: "Communication", Name: "Effective Communication", Platform: "LinkedIn Learning", Duration: "4w"},
		{Skill: "Agile", Name: "Agile Project Management", Platform: "edX", Duration: "5w"},
		{Skill: "Analytics", Name: "Data Analytics with Python", Platform: "Udemy", Duration: "6w"},
		{Skill: "Leadership", Name: "Leadership Excellence", Platform: "Coursera", Duration: "6w"},
	}
}

func defaultRoadmaps() map[string][]RoadmapMilestone {
	return map[string][]RoadmapMilestone{
		"Data Engineer": {
			{Name: "Foundations", FocusSkill: "Python & SQL", Action: "Learn the fundamentals of programming with Python and basic database management using SQL.", RecommendedCourse: "SQL Mastery on Udemy (4w)"},
			{Name: "Intermediate ETL & Cloud", FocusSkill: "ETL & Cloud", Action: "Master data pipeline techniques and understand cloud storage solutions.", RecommendedCourse: "ETL Fundamentals on LinkedIn Learning (5w)"},
			{Name: "Advanced Data Engineering", FocusSkill: "Big Data & Cloud Scaling", Action: "Apply advanced techniques for processing big data on cloud platforms.", RecommendedCourse: "AWS Certified on Udacity (8w)"},
		},
		"AI Specialist": {
			{Name: "Foundations", FocusSkill: "Python & Intro to ML", Action: "Build a solid foundation in Python and learn the basics of machine learning.", RecommendedCourse: "ML Bootcamp on edX (10w)"},
			{Name: "Deep Learning", FocusSkill: "TensorFlow & Advanced ML", Action: "Dive deeper into neural networks, deep learning concepts, and TensorFlow.", RecommendedCourse: "TensorFlow Pro on Pluralsight (6w)"},
			{Name: "AI Deployment", FocusSkill: "Model Deployment & Optimization", Action: "Learn to deploy and optimize AI models in production environments.", RecommendedCourse: "AI Deployment Strategies on Coursera (8w)"},
		},
		"Cloud Architect": {
			{Name: "Cloud Fundamentals", FocusSkill: "Cloud Concepts", Action: "Understand cloud computing basics, including IaaS, PaaS, and SaaS.", RecommendedCourse: "AWS Certified on Udacity (8w)"},
			{Name: "Networking & Security", FocusSkill: "Advanced Networking & Security", Action: "Learn advanced networking architectures and cloud security best practices.", RecommendedCourse: "Cybersecurity Fundamentals on Udemy (7w)"},
			{Name: "Architecture Mastery", FocusSkill: "Designing Scalable Systems", Action: "Design and implement scalable, robust cloud architectures.", RecommendedCourse: "Cloud Architect Pro on edX (10w)"},
		},
		"Data Scientist": {
			{Name: "Data Analysis", FocusSkill: "Python & Statistics", Action: "Learn data analysis, visualization, and statistical fundamentals.", RecommendedCourse: "Advanced Python on Coursera (6w)"},
			{Name: "Machine Learning", FocusSkill: "ML Algorithms", Action: "Develop proficiency in machine learning techniques and model building.", RecommendedCourse: "ML Bootcamp on edX (10w)"},
			{Name: "Real-World Projects", FocusSkill: "Applied Data Science", Action: "Work on real-world projects to solidify your data science skills.", RecommendedCourse: "Data Science Capstone on Udacity (8w)"},
		},
		"DevOps Engineer": {
			{Name: "Foundations", FocusSkill: "Linux & Scripting", Action: "Master Linux system administration and scripting with Python.", RecommendedCourse: "Linux Administration on Udacity (6w)"},
			{Name: "CI/CD & Automation", FocusSkill: "Automation Tools", Action: "Learn best practices for continuous integration, deployment, and automation.", RecommendedCourse: "CI/CD with Jenkins on Pluralsight (4w)"},
			{Name: "Cloud & Containerization", FocusSkill: "Cloud Orchestration", Action: "Implement container orchestration and cloud deployment strategies.", RecommendedCourse: "AWS Certified on Udacity (8w)"},
		},
		"Cybersecurity Analyst": {
			{Name: "Cybersecurity Basics", FocusSkill: "Networking & Security", Action: "Learn the fundamentals of cybersecurity, including threat types and prevention.", RecommendedCourse: "Cybersecurity Fundamentals on Udemy (7w)"},
			{Name: "Advanced Threat Analysis", FocusSkill: "Risk Assessment", Action: "Deep dive into threat detection and risk management techniques.", RecommendedCourse: "Risk Management in IT on LinkedIn Learning (5w)"},
			{Name: "Incident Response", FocusSkill: "Crisis Management", Action: "Prepare for real-world incident response and recovery scenarios.", RecommendedCourse: "Incident Response Strategies on Coursera (8w)"},
		},
		"Full-Stack Developer": {
			{Name: "Front-End Fundamentals", FocusSkill: "JavaScript & React", Action: "Master front-end development with JavaScript and modern frameworks like React.", RecommendedCourse: "JavaScript Deep Dive on Udacity (6w)"},
			{Name: "Back-End Development", FocusSkill: "Python & SQL", Action: "Learn server-side programming and database management.", RecommendedCourse: "Advanced Python on Coursera (6w)"},
			{Name: "Full-Stack Integration", FocusSkill: "Application Deployment", Action: "Build and deploy full-stack applications from scratch.", RecommendedCourse: "React from Scratch on Coursera (6w)"},
		},
		"Product Manager": {
			{Name: "Foundations", FocusSkill: "Communication & Analytics", Action: "Develop core skills in effective communication and data-driven decision making.", RecommendedCourse: "Effective Communication on LinkedIn Learning (4w)"},
			{Name: "Agile & Leadership", FocusSkill: "Project Management", Action: "Learn agile methodologies and how to lead cross-functional teams.", RecommendedCourse: "Agile Project Management on edX (5w)"},
			{Name: "Strategic Planning", FocusSkill: "Product Strategy", Action: "Master strategic planning and stakeholder management for successful product launches.", RecommendedCourse: "Leadership Excellence on Coursera (6w)"},
		},
	}
}

func defaultInterviewQuestions() map[string][]string {
	return map[string][]string{
		"Data Engineer": {
			"Explain the ETL process and its challenges.",
			"How do you optimize SQL queries?",
			"Describe a time you handled data pipeline failures.",
		},
		"AI Specialist": {
			"What are the differences between supervised and unsupervised learning?",
			"Explain the concept of overfitting in neural networks.",
			"How do you choose the right model architecture for a problem?",
		},
		"Cloud Architect": {
			"How do you design a scalable cloud solution?",
			"What are the key differences between IaaS, PaaS, and SaaS?",
			"Discuss your experience with multi-cloud environments.",
		},
		"Data Scientist": {
			"How do you handle missing data in a dataset?",
			"What is the role of feature engineering in machine learning?",
			"Explain a project where you implemented statistical models.",
		},
		"DevOps Engineer": {
			"What are the best practices for CI/CD?",
			"How do you manage container orchestration?",
			"Describe your experience with infrastructure as code.",
		},
		"Cybersecurity Analyst": {
			"What are the most common cybersecurity threats today?",
			"How do you approach risk assessment?",
			"Describe your experience with incident response.",
		},
		"Full-Stack Developer": {
			"Explain the MVC architecture in web development.",
			"How do you ensure the security of a web application?",
			"Describe a challenging bug you fixed on the front-end.",
		},
		"Product Manager": {
			"How do you prioritize features for a product roadmap?",
			"Explain a time when you had to make a tough product decision.",
			"How do you handle stakeholder communication?",
		},
	}
}

func defaultNews() []NewsItem {
	return []NewsItem{
		{Headline: "Tech Giants Shift Focus to AI-Driven Solutions", Link: "https://news.example.com/ai-solutions"},
		{Headline: "Remote Work Revolutionizes Tech Industry", Link: "https://news.example.com/remote-work"},
		{Headline: "New Certification Programs Gain Popularity Among Engineers", Link: "https://news.example.com/new-certifications"},
		{Headline: "Cybersecurity: Top Threats and How to Combat Them", Link: "https://news.example.com/cyber-threats"},
		{Headline: "The Rise of Full-Stack Developers in the Modern Era", Link: "https://news.example.com/full-stack-rise"},
		{Headline: "Innovations in Cloud Computing: What to Expect Next", Link: "https://news.example.com/cloud-innovations"},
		{Headline: "Agile Methodologies: Transforming Project Management", Link: "https://news.example.com/agile-transformation"},
	}
}
