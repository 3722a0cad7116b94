// Package textsim scores free-text similarity with a TF-IDF weighted cosine
// over exactly two documents. The vocabulary is rebuilt per call so scores
// for one comparison can never leak idf weighting into another.
package textsim

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	maxTerms = 500

	// NeutralScore is returned when either document is degenerate
	// (empty after stop-word removal). Similarity is advisory, so a
	// neutral fallback beats failing the caller.
	NeutralScore = 50.0
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Similarity returns a 0-100 cosine similarity between two documents using
// unigram+bigram TF-IDF vectors restricted to these two documents only.
func Similarity(docA, docB string) float64 {
	termsA := extractTerms(docA)
	termsB := extractTerms(docB)
	if len(termsA) == 0 || len(termsB) == 0 {
		return NeutralScore
	}

	vocab := buildVocabulary(termsA, termsB)
	if len(vocab) == 0 {
		return NeutralScore
	}

	vecA := vectorize(termsA, termsB, vocab, true)
	vecB := vectorize(termsA, termsB, vocab, false)

	sim := cosine(vecA, vecB)
	if math.IsNaN(sim) {
		return NeutralScore
	}
	return sim * 100
}

// extractTerms tokenizes, drops stop-words and emits unigrams followed by
// bigrams over the surviving token sequence.
func extractTerms(doc string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(doc), -1)

	kept := tokens[:0]
	for _, tok := range tokens {
		if !stopWords[tok] {
			kept = append(kept, tok)
		}
	}

	terms := make([]string, 0, len(kept)*2)
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// buildVocabulary selects up to maxTerms distinct terms by combined
// frequency across both documents, ties broken lexicographically.
func buildVocabulary(termsA, termsB []string) map[string]int {
	freq := make(map[string]int, len(termsA)+len(termsB))
	for _, t := range termsA {
		freq[t]++
	}
	for _, t := range termsB {
		freq[t]++
	}

	distinct := make([]string, 0, len(freq))
	for t := range freq {
		distinct = append(distinct, t)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if freq[distinct[i]] != freq[distinct[j]] {
			return freq[distinct[i]] > freq[distinct[j]]
		}
		return distinct[i] < distinct[j]
	})
	if len(distinct) > maxTerms {
		distinct = distinct[:maxTerms]
	}

	vocab := make(map[string]int, len(distinct))
	for i, t := range distinct {
		vocab[t] = i
	}
	return vocab
}

// vectorize builds the TF-IDF vector for one of the two documents. The idf
// uses smoothed document frequencies over the two-document corpus.
func vectorize(termsA, termsB []string, vocab map[string]int, first bool) []float64 {
	countsA := termCounts(termsA, vocab)
	countsB := termCounts(termsB, vocab)

	counts := countsA
	if !first {
		counts = countsB
	}

	vec := make([]float64, len(vocab))
	for term, idx := range vocab {
		tf := float64(counts[term])
		if tf == 0 {
			continue
		}
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log(float64(1+2)/float64(1+df)) + 1
		vec[idx] = tf * idf
	}
	return vec
}

func termCounts(terms []string, vocab map[string]int) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		if _, ok := vocab[t]; ok {
			counts[t]++
		}
	}
	return counts
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return math.NaN()
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
