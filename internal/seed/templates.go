package seed

import "github.com/talentflow/talentflow-back/internal/domain"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func choice(label, value string) domain.Option {
	return domain.Option{Label: label, Value: value}
}

// assessmentTemplates returns the four question banks assigned to jobs by
// title keyword: software (default), leadership, ML, DevOps.
func assessmentTemplates() []domain.Assessment {
	return []domain.Assessment{
		{
			Title:       "Software Development Assessment",
			Description: "Technical assessment for software engineers",
			Sections: []domain.Section{
				{
					Title:       "Programming Background",
					Description: "Tell us about your coding experience",
					Questions: []domain.Question{
						{Type: domain.QuestionShortText, Label: "Primary programming language", Required: true, Validation: &domain.Validation{MaxLength: intPtr(50)}},
						{Type: domain.QuestionLongText, Label: "Describe your most challenging project", Required: true, Validation: &domain.Validation{MaxLength: intPtr(500)}},
						{Type: domain.QuestionNumeric, Label: "Years of coding experience", Required: true, Validation: &domain.Validation{Min: floatPtr(0), Max: floatPtr(30)}},
						{Type: domain.QuestionSingleChoice, Label: "Preferred development methodology", Required: true, Options: []domain.Option{
							choice("Agile", "Agile"),
							choice("Waterfall", "Waterfall"),
							choice("DevOps", "DevOps"),
						}},
					},
				},
				{
					Title:       "Technical Skills",
					Description: "Evaluate your technical proficiency",
					Questions: []domain.Question{
						{Type: domain.QuestionMultiChoice, Label: "Frameworks you've worked with", Required: true, Options: []domain.Option{
							choice("React", "React"),
							choice("Angular", "Angular"),
							choice("Vue.js", "Vue.js"),
							choice("Spring Boot", "Spring Boot"),
						}},
						{Type: domain.QuestionLongText, Label: "Explain the concept of inheritance in OOP", Required: false, Validation: &domain.Validation{MaxLength: intPtr(300)}},
					},
				},
			},
		},
		{
			Title:       "Leadership & Management Assessment",
			Description: "Assessment for senior and lead positions",
			Sections: []domain.Section{
				{
					Title:       "Leadership Experience",
					Description: "Your management and leadership background",
					Questions: []domain.Question{
						{Type: domain.QuestionShortText, Label: "Largest team size you've managed", Required: true, Validation: &domain.Validation{MaxLength: intPtr(20)}},
						{Type: domain.QuestionLongText, Label: "Describe a difficult team situation you resolved", Required: true, Validation: &domain.Validation{MaxLength: intPtr(600)}},
						{Type: domain.QuestionNumeric, Label: "Years in leadership roles", Required: true, Validation: &domain.Validation{Min: floatPtr(0), Max: floatPtr(25)}},
						{Type: domain.QuestionSingleChoice, Label: "Leadership style preference", Required: true, Options: []domain.Option{
							choice("Democratic", "Democratic"),
							choice("Transformational", "Transformational"),
							choice("Servant Leadership", "Servant Leadership"),
						}},
					},
				},
				{
					Title:       "Strategic Thinking",
					Description: "Your approach to planning and strategy",
					Questions: []domain.Question{
						{Type: domain.QuestionMultiChoice, Label: "Key areas of focus as a leader", Required: true, Options: []domain.Option{
							choice("Team Development", "Team Development"),
							choice("Product Strategy", "Product Strategy"),
							choice("Process Improvement", "Process Improvement"),
							choice("Innovation", "Innovation"),
						}},
						{Type: domain.QuestionLongText, Label: "How do you handle conflicting priorities?", Required: false, Validation: &domain.Validation{MaxLength: intPtr(400)}},
					},
				},
			},
		},
		{
			Title:       "Machine Learning & AI Assessment",
			Description: "Specialized assessment for ML Engineers",
			Sections: []domain.Section{
				{
					Title:       "ML Fundamentals",
					Description: "Core machine learning concepts",
					Questions: []domain.Question{
						{Type: domain.QuestionShortText, Label: "Favorite ML algorithm and why", Required: true, Validation: &domain.Validation{MaxLength: intPtr(100)}},
						{Type: domain.QuestionLongText, Label: "Explain overfitting and how to prevent it", Required: true, Validation: &domain.Validation{MaxLength: intPtr(400)}},
						{Type: domain.QuestionNumeric, Label: "Years of ML experience", Required: true, Validation: &domain.Validation{Min: floatPtr(0), Max: floatPtr(20)}},
						{Type: domain.QuestionSingleChoice, Label: "Primary ML domain", Required: true, Options: []domain.Option{
							choice("Computer Vision", "Computer Vision"),
							choice("Natural Language Processing", "NLP"),
							choice("Recommendation Systems", "Recommendation Systems"),
							choice("Time Series Analysis", "Time Series"),
						}},
					},
				},
				{
					Title:       "Tools & Technologies",
					Description: "ML tools and frameworks",
					Questions: []domain.Question{
						{Type: domain.QuestionMultiChoice, Label: "ML frameworks you've used", Required: true, Options: []domain.Option{
							choice("TensorFlow", "TensorFlow"),
							choice("PyTorch", "PyTorch"),
							choice("Scikit-learn", "Scikit-learn"),
							choice("Keras", "Keras"),
						}},
						{Type: domain.QuestionLongText, Label: "Describe your model deployment experience", Required: false, Validation: &domain.Validation{MaxLength: intPtr(350)}},
					},
				},
			},
		},
		{
			Title:       "DevOps & Infrastructure Assessment",
			Description: "Assessment for DevOps Engineers",
			Sections: []domain.Section{
				{
					Title:       "Infrastructure & Automation",
					Description: "Your experience with infrastructure management",
					Questions: []domain.Question{
						{Type: domain.QuestionShortText, Label: "Preferred cloud platform", Required: true, Validation: &domain.Validation{MaxLength: intPtr(50)}},
						{Type: domain.QuestionLongText, Label: "Describe a complex deployment you automated", Required: true, Validation: &domain.Validation{MaxLength: intPtr(500)}},
						{Type: domain.QuestionNumeric, Label: "Years of DevOps experience", Required: true, Validation: &domain.Validation{Min: floatPtr(0), Max: floatPtr(20)}},
						{Type: domain.QuestionSingleChoice, Label: "Container orchestration preference", Required: true, Options: []domain.Option{
							choice("Kubernetes", "Kubernetes"),
							choice("Docker Swarm", "Docker Swarm"),
							choice("Amazon ECS", "Amazon ECS"),
						}},
					},
				},
				{
					Title:       "Monitoring & Security",
					Description: "Your approach to system monitoring and security",
					Questions: []domain.Question{
						{Type: domain.QuestionMultiChoice, Label: "Monitoring tools you've implemented", Required: true, Options: []domain.Option{
							choice("Prometheus", "Prometheus"),
							choice("Grafana", "Grafana"),
							choice("ELK Stack", "ELK Stack"),
							choice("Datadog", "Datadog"),
						}},
						{Type: domain.QuestionLongText, Label: "How do you ensure security in CI/CD pipelines?", Required: false, Validation: &domain.Validation{MaxLength: intPtr(400)}},
					},
				},
			},
		},
	}
}
