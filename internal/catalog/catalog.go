// Package catalog holds the static question catalog: the ordered scale
// set, each scale's questions in authoring order, and the answer-option
// sets. All of it is fixed configuration; there are no error paths.
package catalog

import "github.com/dotcommander/mindscreen/internal/types"

// Sections is the fixed scale order. Result items are always produced
// in this order.
var Sections = []types.Scale{
	types.ScaleAnxiety,
	types.ScaleDepression,
	types.ScaleInsomnia,
}

// SectionDetail carries a scale's display metadata. Icon and Label are
// explicit fields rather than tokens of a composed title string, so the
// presentation layer never has to parse anything.
type SectionDetail struct {
	Icon        string
	Label       string
	Title       string
	Description string
}

// sectionDetails mirrors the fixed localized text set.
var sectionDetails = map[types.Scale]SectionDetail{
	types.ScaleAnxiety: {
		Icon:        "😟",
		Label:       "불안",
		Title:       "😟 불안 척도 (GAD-7)",
		Description: "지난 2주 동안 아래 문제들로 인해 얼마나 자주 방해를 받았는지 표시해주세요.",
	},
	types.ScaleDepression: {
		Icon:        "😔",
		Label:       "우울",
		Title:       "😔 우울 척도 (PHQ-9)",
		Description: "지난 2주 동안 아래 문제들로 인해 얼마나 자주 방해를 받았는지 표시해주세요.",
	},
	types.ScaleInsomnia: {
		Icon:        "😴",
		Label:       "불면증",
		Title:       "😴 불면증 척도 (ISI)",
		Description: "지난 2주 동안의 수면 양상에 대해 가장 적절한 숫자를 선택해주세요.",
	},
}

// questions lists every catalog question in authoring order.
var questions = []types.Question{
	// Anxiety (GAD-7)
	{ID: "anxiety-1", Section: types.ScaleAnxiety, Text: "신경이 과민해지거나 안절부절못하고 조마조마한 느낌이 들었다."},
	{ID: "anxiety-2", Section: types.ScaleAnxiety, Text: "걱정을 멈출 수 없거나 조절할 수 없었다."},
	{ID: "anxiety-3", Section: types.ScaleAnxiety, Text: "여러 가지 것들에 대해 너무 많이 걱정했다."},
	{ID: "anxiety-4", Section: types.ScaleAnxiety, Text: "편안하게 있기가 어려웠다."},
	{ID: "anxiety-5", Section: types.ScaleAnxiety, Text: "너무 안절부절못해서 가만히 앉아 있기가 어려웠다."},
	{ID: "anxiety-6", Section: types.ScaleAnxiety, Text: "쉽게 짜증이 나거나 신경질이 났다."},
	{ID: "anxiety-7", Section: types.ScaleAnxiety, Text: "끔찍한 일이 일어날 것 같은 두려움을 느꼈다."},

	// Depression (PHQ-9)
	{ID: "depression-1", Section: types.ScaleDepression, Text: "거의 모든 활동에 대한 흥미나 즐거움이 거의 없었다."},
	{ID: "depression-2", Section: types.ScaleDepression, Text: "기분이 가라앉거나, 우울하거나, 희망이 없다고 느꼈다."},
	{ID: "depression-3", Section: types.ScaleDepression, Text: "잠들기 어렵거나, 계속 잠을 자기가 어렵거나, 혹은 너무 많이 잤다."},
	{ID: "depression-4", Section: types.ScaleDepression, Text: "피곤하거나 기운이 거의 없다고 느꼈다."},
	{ID: "depression-5", Section: types.ScaleDepression, Text: "식욕이 없거나 혹은 너무 많이 먹었다."},
	{ID: "depression-6", Section: types.ScaleDepression, Text: "자신을 부정적으로 생각했다. (예: 실패자, 가족을 실망시킴)"},
	{ID: "depression-7", Section: types.ScaleDepression, Text: "신문을 읽거나 TV를 보는 것과 같은 일에 집중하기가 어려웠다."},
	{ID: "depression-8", Section: types.ScaleDepression, Text: "다른 사람들이 알아챌 정도로 너무 느리게 움직이거나 말을 했다. 혹은 이와는 반대로, 너무 초조해하거나 안절부절못해서 평소보다 훨씬 더 많이 돌아다녔다."},
	{ID: "depression-9", Section: types.ScaleDepression, Text: "차라리 죽는 것이 낫겠다고 생각하거나, 어떻게든 자신을 해칠 것이라고 생각했다."},

	// Insomnia (ISI)
	{ID: "insomnia-1", Section: types.ScaleInsomnia, Text: "잠들기 어려운 정도"},
	{ID: "insomnia-2", Section: types.ScaleInsomnia, Text: "잠을 유지하기 어려운 정도"},
	{ID: "insomnia-3", Section: types.ScaleInsomnia, Text: "너무 일찍 깨는 문제"},
	{ID: "insomnia-4", Section: types.ScaleInsomnia, Text: "현재 수면 문제에 대해 얼마나 만족/불만족하십니까?"},
	{ID: "insomnia-5", Section: types.ScaleInsomnia, Text: "수면 문제가 일상 기능(예: 주간 피로, 기분, 업무/학업 수행, 집중력, 기억력, 활력 등)에 어느 정도 지장을 줍니까?"},
	{ID: "insomnia-6", Section: types.ScaleInsomnia, Text: "다른 사람들은 당신의 수면 문제로 인해 삶의 질이 저하되었다고 어느 정도 생각합니까?"},
	{ID: "insomnia-7", Section: types.ScaleInsomnia, Text: "현재의 수면 문제에 대해 어느 정도 걱정/고민하십니까?"},
}

// answerOptions is the default option set per scale.
var answerOptions = map[types.Scale][]types.AnswerOption{
	types.ScaleAnxiety: {
		{Text: "전혀 없음", Value: 0},
		{Text: "며칠 동안", Value: 1},
		{Text: "7일 이상", Value: 2},
		{Text: "거의 매일", Value: 3},
	},
	types.ScaleDepression: {
		{Text: "전혀 없음", Value: 0},
		{Text: "며칠 동안", Value: 1},
		{Text: "7일 이상", Value: 2},
		{Text: "거의 매일", Value: 3},
	},
	types.ScaleInsomnia: {
		{Text: "없음", Value: 0},
		{Text: "가벼움", Value: 1},
		{Text: "중간", Value: 2},
		{Text: "심각함", Value: 3},
		{Text: "매우 심각함", Value: 4},
	},
}

// customOptions overrides the default option set for individual
// questions. Only insomnia items 4-7 use alternate wording; the value
// range stays 0-4.
var customOptions = map[string][]types.AnswerOption{
	"insomnia-4": {
		{Text: "매우 만족", Value: 0},
		{Text: "만족", Value: 1},
		{Text: "약간 만족", Value: 2},
		{Text: "불만족", Value: 3},
		{Text: "매우 불만족", Value: 4},
	},
	"insomnia-5": {
		{Text: "전혀 지장 없음", Value: 0},
		{Text: "약간", Value: 1},
		{Text: "어느 정도", Value: 2},
		{Text: "많이", Value: 3},
		{Text: "매우 많이", Value: 4},
	},
	"insomnia-6": {
		{Text: "전혀 아님", Value: 0},
		{Text: "약간", Value: 1},
		{Text: "어느 정도", Value: 2},
		{Text: "많이", Value: 3},
		{Text: "매우 많이", Value: 4},
	},
	"insomnia-7": {
		{Text: "전혀 걱정 안 함", Value: 0},
		{Text: "약간", Value: 1},
		{Text: "어느 정도", Value: 2},
		{Text: "많이", Value: 3},
		{Text: "매우 많이", Value: 4},
	},
}

// Detail returns the display metadata for a scale.
func Detail(scale types.Scale) SectionDetail {
	return sectionDetails[scale]
}

// Questions returns the questions of one scale in authoring order. The
// returned slice is shared; callers must not mutate it.
func Questions(scale types.Scale) []types.Question {
	out := make([]types.Question, 0, 9)
	for _, q := range questions {
		if q.Section == scale {
			out = append(out, q)
		}
	}
	return out
}

// AllQuestions returns every question across all scales in authoring
// order.
func AllQuestions() []types.Question {
	return questions
}

// Options returns the answer options for a question: the per-question
// override if present, else the scale default.
func Options(scale types.Scale, questionID string) []types.AnswerOption {
	if opts, ok := customOptions[questionID]; ok {
		return opts
	}
	return answerOptions[scale]
}

// MaxOptionValue returns the highest option value for a scale.
func MaxOptionValue(scale types.Scale) int {
	opts := answerOptions[scale]
	max := 0
	for _, o := range opts {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// QuestionCount returns the number of questions in a scale.
func QuestionCount(scale types.Scale) int {
	return len(Questions(scale))
}
