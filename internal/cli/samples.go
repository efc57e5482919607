package cli

import "quizgame/internal/model"

func mcq(text string, topics []string, difficulty model.Difficulty, correct int, explanation string, choices ...string) model.Question {
	q := model.Question{
		QuestionText:       text,
		QuestionTopicsList: topics,
		AnswerExplanation:  explanation,
		TemplateCategory:   "Technology",
		DifficultyLevel:    difficulty,
		QuestionLanguage:   "English",
		ValidatedManually:  true,
		CreatedBy:          "admin",
		UpdatedBy:          "admin",
	}
	for i, text := range choices {
		q.Choices = append(q.Choices, model.Choice{
			ChoiceText:      text,
			IsCorrectChoice: i == correct,
		})
	}
	return q
}

// sampleQuizzes returns fresh copies on every call
func sampleQuizzes() []*model.Quiz {
	return []*model.Quiz{
		{
			QuizTitle:        "Web Development Fundamentals",
			QuizDescription:  "Test your knowledge of HTML, CSS, and JavaScript basics",
			QuizTopicsList:   []string{"HTML", "CSS", "JavaScript", "Web Development"},
			QuizLanguage:     "English",
			TemplateCategory: "Technology",
			YoutubeChannel:   "TechEdu",
			ReadyForLive:     true,
			CreatedBy:        "admin",
			UpdatedBy:        "admin",
			Questions: []model.Question{
				mcq("What does HTML stand for?", []string{"HTML", "Web Development"}, model.DifficultyEasy, 0,
					"HTML stands for Hyper Text Markup Language. It is the standard markup language for creating web pages.",
					"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"),
				mcq("Which property is used to change the background color in CSS?", []string{"CSS", "Web Development"}, model.DifficultyEasy, 2,
					"The background-color property is used to specify the background color of an element in CSS.",
					"color", "bgcolor", "background-color", "background"),
				mcq("Which JavaScript method is used to add a new element to the end of an array?", []string{"JavaScript", "Web Development"}, model.DifficultyMedium, 0,
					"The push() method adds one or more elements to the end of an array and returns the new length of the array.",
					"push()", "append()", "add()", "insert()"),
			},
		},
		{
			QuizTitle:        "Data Science Essentials",
			QuizDescription:  "Test your knowledge of data science concepts and tools",
			QuizTopicsList:   []string{"Data Science", "Python", "Statistics", "Machine Learning"},
			QuizLanguage:     "English",
			TemplateCategory: "Technology",
			YoutubeChannel:   "DataProfessor",
			ReadyForLive:     true,
			CreatedBy:        "admin",
			UpdatedBy:        "admin",
			Questions: []model.Question{
				mcq("Which Python library is commonly used for data manipulation and analysis?", []string{"Python", "Data Science"}, model.DifficultyMedium, 1,
					"Pandas provides data structures like DataFrame for storing and manipulating tabular data.",
					"NumPy", "Pandas", "Matplotlib", "TensorFlow"),
				mcq("What is a confusion matrix used for?", []string{"Machine Learning", "Data Science", "Statistics"}, model.DifficultyHard, 2,
					"A confusion matrix shows the counts of true and false positives and negatives of a classification model.",
					"To visualize data distributions", "To evaluate regression models", "To evaluate classification models", "To perform dimensionality reduction"),
			},
		},
		{
			QuizTitle:        "Artificial Intelligence Fundamentals",
			QuizDescription:  "Learn about the basic concepts and applications of AI",
			QuizTopicsList:   []string{"Artificial Intelligence", "Machine Learning", "Neural Networks"},
			QuizLanguage:     "English",
			TemplateCategory: "Technology",
			YoutubeChannel:   "AIExplained",
			CreatedBy:        "admin",
			UpdatedBy:        "admin",
			Questions: []model.Question{
				mcq("What is deep learning?", []string{"Artificial Intelligence", "Deep Learning", "Neural Networks"}, model.DifficultyMedium, 1,
					"Deep learning is a subset of machine learning that uses neural networks with many layers.",
					"A type of computer hardware", "A subset of machine learning using neural networks with many layers", "A programming language for AI", "A database management system for large datasets"),
				mcq("Which of the following is NOT a common type of neural network?", []string{"Neural Networks", "Artificial Intelligence"}, model.DifficultyHard, 3,
					"Common types include CNN and RNN. SNN is not a standard neural network architecture.",
					"Convolutional Neural Network (CNN)", "Recurrent Neural Network (RNN)", "Quantum Neural Network (QNN)", "Systematic Neural Network (SNN)"),
			},
		},
	}
}
