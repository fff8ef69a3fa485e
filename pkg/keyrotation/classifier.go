package keyrotation

import "strings"

// Classifier maps a provider error to a retry Kind.
// Only KindRateLimited, KindInvalidCredential and KindOther are meaningful.
type Classifier interface {
	Classify(err error) Kind
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(err error) Kind

func (f ClassifierFunc) Classify(err error) Kind { return f(err) }

// SubstringClassifier matches lower-cased error messages against fixed
// substrings. Rate-limit markers win over credential markers.
type SubstringClassifier struct {
	RateLimited       []string
	InvalidCredential []string
}

// DefaultClassifier returns the matching rules used in production.
// Errors like "invalid argument" describe the request and classify as KindOther.
func DefaultClassifier() SubstringClassifier {
	return SubstringClassifier{
		RateLimited: []string{
			"429",
			"rate limit",
			"quota",
			"resource exhausted",
			"resource_exhausted",
		},
		InvalidCredential: []string{
			"api key",
			"api_key",
			"permission",
			"unauthenticated",
			"invalid key",
			"invalid credential",
		},
	}
}

func (s SubstringClassifier) Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	msg := strings.ToLower(err.Error())
	if containsAny(msg, s.RateLimited) {
		return KindRateLimited
	}
	if containsAny(msg, s.InvalidCredential) {
		return KindInvalidCredential
	}
	return KindOther
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
