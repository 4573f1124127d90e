package cvquality

// outcome is the result of evaluating one checklist item.
type outcome struct {
	points     int
	feedback   string
	positive   bool
	suggestion string
}

type check[T any] struct {
	name string
	eval func(T) outcome
}

// award grants points when pass holds, otherwise it emits the suggestion.
func award[T any](name string, points int, pass func(T) bool, feedback, suggestion string) check[T] {
	return check[T]{
		name: name,
		eval: func(in T) outcome {
			if pass(in) {
				return outcome{points: points, feedback: feedback, positive: true}
			}
			return outcome{suggestion: suggestion}
		},
	}
}

// always awards a fixed baseline.
func always[T any](name string, points int, feedback string) check[T] {
	return check[T]{
		name: name,
		eval: func(T) outcome {
			return outcome{points: points, feedback: feedback, positive: feedback != ""}
		},
	}
}

func runChecklist[T any](section Section, in T, checks []check[T]) SectionFeedback {
	sf := SectionFeedback{
		Section:     section,
		Feedback:    []string{},
		Suggestions: []string{},
	}

	score := 0
	for _, c := range checks {
		o := c.eval(in)
		score += o.points
		if o.feedback != "" {
			sf.Feedback = append(sf.Feedback, o.feedback)
			if o.positive {
				sf.strengths = append(sf.strengths, o.feedback)
			}
		}
		if o.suggestion != "" {
			sf.Suggestions = append(sf.Suggestions, o.suggestion)
		}
	}

	sf.Score = capScore(score)
	sf.Status = StatusFor(sf.Score)
	return sf
}

// fixedSection is used by the explicit empty-collection branches.
func fixedSection(section Section, score int, feedback, suggestion string) SectionFeedback {
	sf := SectionFeedback{
		Section:     section,
		Score:       score,
		Status:      StatusFor(score),
		Feedback:    []string{},
		Suggestions: []string{},
	}
	if feedback != "" {
		sf.Feedback = append(sf.Feedback, feedback)
	}
	if suggestion != "" {
		sf.Suggestions = append(sf.Suggestions, suggestion)
	}
	return sf
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
