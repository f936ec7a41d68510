package match

import (
	"math"
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"gonum.org/v1/gonum/floats"
)

const maxFeatures = 10000

// tokenPattern keeps letters, digits and the symbols common in technology
// names (C++, C#, Node.js). Two-character minimum, matching the usual
// vectorizer convention of dropping single letters.
var tokenPattern = regexp.MustCompile(`[a-z0-9+#.]{2,}`)

// Compact English stop-word list. Stop words are removed before n-gram
// construction, so bigrams never span a removed word.
var stopWords = mapset.NewThreadUnsafeSet(
	"a", "about", "above", "after", "again", "all", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "did", "do", "does", "doing",
	"down", "during", "each", "few", "for", "from", "further", "had", "has",
	"have", "having", "he", "her", "here", "hers", "him", "his", "how", "if",
	"in", "into", "is", "it", "its", "just", "me", "more", "most", "my", "no",
	"nor", "not", "now", "of", "off", "on", "once", "only", "or", "other",
	"our", "ours", "out", "over", "own", "same", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "theirs", "them", "then",
	"there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with", "you",
	"your", "yours",
)

// tfidfSimilarity fits a unigram+bigram TF-IDF model jointly on the two
// documents and returns the cosine similarity of their weighted vectors.
// Nothing is persisted between calls.
func tfidfSimilarity(a, b string) float64 {
	docs := [2][]string{ngrams(a), ngrams(b)}

	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return 0
	}
	idf := inverseDocumentFrequencies(docs, vocab)

	va := vectorize(docs[0], vocab, idf)
	vb := vectorize(docs[1], vocab, idf)
	return cosine(va, vb)
}

// ngrams tokenizes text and returns its unigrams followed by its bigrams.
func ngrams(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if !stopWords.Contains(t) {
			tokens = append(tokens, t)
		}
	}

	grams := make([]string, 0, 2*len(tokens))
	grams = append(grams, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		grams = append(grams, tokens[i]+" "+tokens[i+1])
	}
	return grams
}

// buildVocabulary assigns a dense index to every term, keeping at most
// maxFeatures terms ordered by corpus frequency then alphabetically so the
// mapping is deterministic.
func buildVocabulary(docs [2][]string) map[string]int {
	freq := map[string]int{}
	for _, doc := range docs {
		for _, term := range doc {
			freq[term]++
		}
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// inverseDocumentFrequencies computes the smoothed idf per vocabulary term:
// ln((1+n)/(1+df)) + 1 over the n-document corpus.
func inverseDocumentFrequencies(docs [2][]string, vocab map[string]int) []float64 {
	df := make([]int, len(vocab))
	for _, doc := range docs {
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, term := range doc {
			if idx, ok := vocab[term]; ok && seen.Add(term) {
				df[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return idf
}

// vectorize produces the l2-normalized TF-IDF vector of one document.
func vectorize(doc []string, vocab map[string]int, idf []float64) []float64 {
	vec := make([]float64, len(vocab))
	for _, term := range doc {
		if idx, ok := vocab[term]; ok {
			vec[idx]++
		}
	}
	for i := range vec {
		vec[i] *= idf[i]
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

func cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
