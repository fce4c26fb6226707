// Package sentiment はレビュー本文のキーワードベース感情分類を提供する。
//
// 分類は固定語彙に対する部分文字列マッチで行う。単語境界は考慮しない
// （"bad" は "badge" の内部にもマッチする）。これは既存データとの互換性を
// 保つための仕様であり、変更してはならない。
package sentiment

import "strings"

// Label は分類結果を表す。
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// 固定語彙。互換性のため並び・内容ともに変更不可。
var (
	positiveWords = []string{
		"great", "excellent", "amazing", "fantastic", "wonderful", "good", "best",
		"love", "perfect", "outstanding", "superb", "awesome", "happy", "satisfied",
		"recommend", "helpful", "friendly", "clean", "fast", "professional", "honest",
	}

	negativeWords = []string{
		"bad", "terrible", "horrible", "awful", "worst", "hate", "poor", "disappointing",
		"unhappy", "rude", "slow", "overpriced", "broken", "failed", "waste", "problem",
		"issue", "dishonest", "unprofessional", "scam", "angry", "frustrated",
	}
)

// Classify は本文を小文字化し、各語彙の部分文字列ヒット数を数えて分類する。
// 正のヒット数をP、負のヒット数をNとすると、P>Nならpositive、N>Pならnegative、
// それ以外（空文字列・同数）はneutralを返す。
// 各単語は本文中に見つかれば1ヒットと数える（出現回数ではなく有無）。
// 純粋関数であり、状態もI/Oも持たない。
func Classify(text string) Label {
	if text == "" {
		return Neutral
	}

	t := strings.ToLower(text)

	var pos, neg int
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}
