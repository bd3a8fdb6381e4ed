// ABOUTME: Recommendation service scores fetched candidates against a bookmark-derived profile
// ABOUTME: TF-IDF over title+URL text with cosine similarity, mirroring the product's ranking

package recommend

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

// Service builds user profiles from bookmarks and ranks scraped
// candidates against them.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new recommendation service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Profile is a user's interest vector in TF-IDF space. It is built once
// from bookmarks and then applied to any number of candidate sets.
type Profile struct {
	terms  map[string]int
	idf    []float64
	vector []float64
}

// BuildProfile derives a profile from bookmark rows. Each row's title
// and URL form one document; the profile is the mean of the documents'
// normalized TF-IDF vectors.
func (s *Service) BuildProfile(rows []domain.ResultRow) (*Profile, error) {
	if len(rows) == 0 {
		return nil, errors.New("cannot build a profile from zero bookmarks")
	}

	docs := make([][]string, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, tokenize(row.Title+" "+row.URL))
	}

	terms := make(map[string]int)
	docFrequency := make([]int, 0)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if seen[term] {
				continue
			}
			seen[term] = true
			index, ok := terms[term]
			if !ok {
				index = len(terms)
				terms[term] = index
				docFrequency = append(docFrequency, 0)
			}
			docFrequency[index]++
		}
	}

	if len(terms) == 0 {
		return nil, errors.New("bookmarks contain no usable text")
	}

	// Smoothed IDF, so terms present in every document keep a small
	// positive weight instead of vanishing.
	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, df := range docFrequency {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	profile := &Profile{terms: terms, idf: idf}

	mean := make([]float64, len(terms))
	for _, doc := range docs {
		vector := profile.vectorize(doc)
		for i, v := range vector {
			mean[i] += v / n
		}
	}
	profile.vector = mean

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Built user profile", map[string]interface{}{
			"bookmarks": len(rows),
			"terms":     len(terms),
		})
	}

	return profile, nil
}

// Recommend scores candidates against the profile and returns the top N
// by cosine similarity, highest first. Candidates sharing no vocabulary
// with the profile score zero but are still eligible for the tail of
// the ranking. Ties keep input order.
func (s *Service) Recommend(candidates []domain.ResultRow, profile *Profile, topN int) []domain.ScoredRow {
	if profile == nil || len(candidates) == 0 || topN <= 0 {
		return []domain.ScoredRow{}
	}

	scored := make([]domain.ScoredRow, 0, len(candidates))
	for _, candidate := range candidates {
		vector := profile.vectorize(tokenize(candidate.Title + " " + candidate.URL))
		scored = append(scored, domain.ScoredRow{
			ResultRow: candidate,
			Score:     cosine(vector, profile.vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}

// vectorize maps a tokenized document into the profile's term space,
// L2-normalized. Terms outside the vocabulary are dropped.
func (p *Profile) vectorize(doc []string) []float64 {
	vector := make([]float64, len(p.terms))
	for _, term := range doc {
		if index, ok := p.terms[term]; ok {
			vector[index] += p.idf[index]
		}
	}

	var norm float64
	for _, v := range vector {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}

// cosine computes the cosine similarity of two equal-length vectors.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) > 1 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
