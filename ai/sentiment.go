package ai

import "strings"

// Polarity scores the sentiment of text on a [-1,1] scale.
// It is a pure function with no failure path: text with no scored words,
// including empty text, yields 0.0.
func Polarity(text string) float64 {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return 0.0
	}

	var sum float64
	var hits int
	negated := false

	for _, token := range tokens {
		word := strings.Trim(token, ".,!?;:'\"()[]")
		if word == "" {
			continue
		}
		if negations[word] || strings.HasSuffix(word, "n't") {
			negated = true
			continue
		}
		score, ok := valence[word]
		if !ok {
			negated = false
			continue
		}
		if negated {
			score = -score
			negated = false
		}
		sum += score
		hits++
	}

	if hits == 0 {
		return 0.0
	}

	polarity := sum / float64(hits)
	if polarity > 1 {
		polarity = 1
	}
	if polarity < -1 {
		polarity = -1
	}
	return polarity
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"without": true, "hardly": true, "barely": true,
}

// valence maps sentiment-bearing words to polarity weights
var valence = map[string]float64{
	// strongly positive
	"amazing": 1.0, "wonderful": 1.0, "fantastic": 1.0, "excellent": 1.0,
	"ecstatic": 1.0, "overjoyed": 1.0, "thrilled": 0.9, "elated": 0.9,
	"euphoric": 1.0, "incredible": 0.9, "perfect": 0.9, "love": 0.8,
	"loved": 0.8, "awesome": 0.9, "delighted": 0.9, "brilliant": 0.9,

	// positive
	"happy": 0.7, "glad": 0.6, "joyful": 0.8, "cheerful": 0.7,
	"pleased": 0.6, "content": 0.5, "grateful": 0.7, "thankful": 0.7,
	"blessed": 0.7, "appreciative": 0.6, "excited": 0.7, "enthusiastic": 0.7,
	"energetic": 0.5, "proud": 0.6, "hopeful": 0.6, "optimistic": 0.6,
	"calm": 0.4, "peaceful": 0.5, "serene": 0.5, "relaxed": 0.4,
	"tranquil": 0.5, "good": 0.5, "great": 0.7, "nice": 0.4,
	"better": 0.4, "enjoy": 0.6, "enjoyed": 0.6, "fun": 0.5,
	"productive": 0.5, "accomplished": 0.6, "success": 0.6, "successful": 0.6,
	"progress": 0.4, "improved": 0.5, "win": 0.6, "won": 0.6,

	// negative
	"sad": -0.6, "down": -0.4, "blue": -0.4, "melancholy": -0.6,
	"disappointed": -0.6, "unhappy": -0.6, "upset": -0.6, "hurt": -0.6,
	"lonely": -0.6, "tired": -0.3, "exhausted": -0.5, "drained": -0.5,
	"anxious": -0.6, "worried": -0.5, "nervous": -0.5, "uneasy": -0.4,
	"concerned": -0.3, "afraid": -0.6, "scared": -0.6, "fear": -0.6,
	"stressed": -0.6, "overwhelmed": -0.7, "pressure": -0.4, "tension": -0.4,
	"angry": -0.7, "mad": -0.6, "irritated": -0.5, "annoyed": -0.5,
	"frustrated": -0.6, "bothered": -0.4, "vexed": -0.5, "bad": -0.5,
	"worse": -0.5, "fail": -0.6, "failed": -0.6, "failure": -0.7,
	"problem": -0.4, "difficult": -0.4, "hard": -0.3, "struggle": -0.5,
	"struggling": -0.5, "pain": -0.6, "sick": -0.5, "lost": -0.4,

	// strongly negative
	"terrible": -0.9, "horrible": -0.9, "awful": -0.9, "miserable": -0.9,
	"devastated": -1.0, "heartbroken": -1.0, "depressed": -0.9, "hopeless": -0.9,
	"furious": -0.9, "hate": -0.8, "hated": -0.8, "worst": -0.9,
	"disaster": -0.8, "nightmare": -0.8, "unbearable": -0.9,
}
