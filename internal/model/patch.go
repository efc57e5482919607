package model

import "time"

// QuizPatch carries the fields of a partial quiz update. Nil fields are
// left untouched.
type QuizPatch struct {
	QuizTitle        *string     `json:"quizTitle"`
	QuizDescription  *string     `json:"quizDescription"`
	QuizTopicsList   *[]string   `json:"quizTopicsList"`
	QuizLanguage     *string     `json:"quizLanguage"`
	TemplateCategory *string     `json:"templateCategory"`
	YoutubeChannel   *string     `json:"youtubeChannel"`
	Questions        *[]Question `json:"questions"`
	ReadyForLive     *bool       `json:"readyForLive"`
	UpdatedBy        *string     `json:"updatedBy"`
}

// Apply copies the set fields onto q
func (p *QuizPatch) Apply(q *Quiz) {
	setIf(&q.QuizTitle, p.QuizTitle)
	setIf(&q.QuizDescription, p.QuizDescription)
	setIf(&q.QuizTopicsList, p.QuizTopicsList)
	setIf(&q.QuizLanguage, p.QuizLanguage)
	setIf(&q.TemplateCategory, p.TemplateCategory)
	setIf(&q.YoutubeChannel, p.YoutubeChannel)
	setIf(&q.Questions, p.Questions)
	setIf(&q.ReadyForLive, p.ReadyForLive)
	setIf(&q.UpdatedBy, p.UpdatedBy)
}

// QuizGamePatch carries the fields of a partial game update
type QuizGamePatch struct {
	GameTitle          *string     `json:"gameTitle"`
	GameScheduledStart *time.Time  `json:"gameScheduledStart"`
	GameScheduledEnd   *time.Time  `json:"gameScheduledEnd"`
	QuizID             *string     `json:"quizId"`
	Questions          *[]Question `json:"questions"`
	IntroImage         *string     `json:"introImage"`
}

// Apply copies the set fields onto g
func (p *QuizGamePatch) Apply(g *QuizGame) {
	setIf(&g.GameTitle, p.GameTitle)
	if p.GameScheduledStart != nil {
		g.GameScheduledStart = p.GameScheduledStart
	}
	if p.GameScheduledEnd != nil {
		g.GameScheduledEnd = p.GameScheduledEnd
	}
	setIf(&g.QuizID, p.QuizID)
	setIf(&g.Questions, p.Questions)
	setIf(&g.IntroImage, p.IntroImage)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
