package article

import "sort"

// Score computes the heuristic quality score used to rank articles the
// upstream did not assign a relevance index. Richer articles score
// higher: a thumbnail, longer extracts, linked-data presence,
// coordinates, categories and word count all contribute.
func (a Enriched) Score() float64 {
	var score float64
	if a.info != nil {
		if a.info.imageURL != "" {
			score += 10
		}
		if extractScore := float64(len(a.info.extract)) / 100; extractScore > 0 {
			if extractScore > 20 {
				extractScore = 20
			}
			score += extractScore
		}
		if a.info.wikidataID != "" {
			score += 15
		}
		if a.info.coordinates != nil {
			score += 5
		}
		score += float64(len(a.info.categories))
	}
	if wcScore := float64(a.hit.wordCount) / 1000; wcScore > 0 {
		if wcScore > 30 {
			wcScore = 30
		}
		score += wcScore
	}
	return score
}

// SortByRelevance orders articles in place for pipeline output: ranked
// articles first in ascending index order, then unranked articles by
// descending heuristic score. The sort is stable so equal entries keep
// their arrival order.
func SortByRelevance(articles []Enriched) {
	sort.SliceStable(articles, func(i, j int) bool {
		li, iRanked := articles[i].RelevanceIndex()
		lj, jRanked := articles[j].RelevanceIndex()
		switch {
		case iRanked && jRanked:
			return li < lj
		case iRanked:
			return true
		case jRanked:
			return false
		default:
			return articles[i].Score() > articles[j].Score()
		}
	})
}

// SortForDisplay orders articles in place for presentation: by relevance
// index when both are ranked, then articles with a thumbnail before
// those without, then by descending word count.
func SortForDisplay(articles []Enriched) {
	sort.SliceStable(articles, func(i, j int) bool {
		li, iRanked := articles[i].RelevanceIndex()
		lj, jRanked := articles[j].RelevanceIndex()
		if iRanked && jRanked && li != lj {
			return li < lj
		}
		if iRanked != jRanked {
			return iRanked
		}
		iImg := articles[i].ImageURL() != ""
		jImg := articles[j].ImageURL() != ""
		if iImg != jImg {
			return iImg
		}
		return articles[i].WordCount() > articles[j].WordCount()
	})
}
