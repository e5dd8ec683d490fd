package domain

import "testing"

func sampleQuiz() Quiz {
	return Quiz{
		ID:       1,
		Question: Question{ID: 1, Text: "Pick the primes"},
		Answers: []Answer{
			{ID: 1, Text: "2", Correct: true},
			{ID: 2, Text: "3", Correct: true},
			{ID: 3, Text: "4", Correct: false},
		},
	}
}

func TestCheckAnswers(t *testing.T) {
	quiz := sampleQuiz()
	cases := []struct {
		name     string
		selected []int64
		want     bool
	}{
		{"exact correct set", []int64{1, 2}, true},
		{"order does not matter", []int64{2, 1}, true},
		{"missing one correct", []int64{1}, false},
		{"extra wrong answer", []int64{1, 2, 3}, false},
		{"only wrong answer", []int64{3}, false},
		{"empty selection", nil, false},
		{"unknown id", []int64{99}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := quiz.CheckAnswers(tc.selected); got != tc.want {
				t.Fatalf("CheckAnswers(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestViewHidesCorrectness(t *testing.T) {
	view := sampleQuiz().View()
	if view.CorrectAnswers != 2 {
		t.Fatalf("expected correctAnswers 2, got %d", view.CorrectAnswers)
	}
	if len(view.Answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(view.Answers))
	}
	for i, a := range view.Answers {
		if a.ID == 0 || a.Text == "" {
			t.Fatalf("answer %d lost its fields: %+v", i, a)
		}
	}
}
