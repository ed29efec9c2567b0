// Package router turns raw query text into a classified intent, extracted
// entities and a deterministic worker selection. Classification is a
// keyword table over normalized text (pt-BR and English); entity
// extraction is regex-based. No model calls: routing must be fast,
// deterministic and free.
package router

import (
	"sort"
	"strings"

	"github.com/transparencia-ai/veritas/pkg/models"
	"github.com/transparencia-ai/veritas/pkg/workers"
)

// confidence below which the query falls back to the help path.
const helpThreshold = 0.6

// Router classifies queries and selects workers from the catalog.
type Router struct {
	catalog *workers.Catalog
}

// New builds a router over the worker catalog.
func New(catalog *workers.Catalog) *Router {
	return &Router{catalog: catalog}
}

// intentKeywords maps normalized keywords to intents. Matches accumulate
// per intent; the best scorer wins.
var intentKeywords = map[models.IntentKind][]string{
	models.IntentInvestigate: {
		"investigar", "investigue", "investigacao", "apurar", "apure",
		"fiscalizar", "auditar", "auditoria", "irregularidade", "fraude",
		"corrupcao", "superfaturamento", "desvio", "anomalia", "anomalias",
		"suspeito", "suspeita", "investigate", "audit", "fraud", "anomaly",
	},
	models.IntentAnalyze: {
		"analisar", "analise", "analises", "comparar", "compare", "comparacao",
		"avaliar", "avalie", "tendencia", "padrao", "padroes", "evolucao",
		"distribuicao", "gastos", "despesas", "contratos", "licitacoes",
		"convenios", "analyze", "analysis", "trend", "pattern", "spending",
	},
	models.IntentReport: {
		"relatorio", "relatorios", "resumo", "resuma", "sumario", "sintese",
		"consolidar", "consolide", "report", "summary", "summarize",
	},
	models.IntentExplain: {
		"explicar", "explique", "entender", "como funciona", "o que e",
		"o que sao", "significado", "explain", "what is", "how does",
	},
	models.IntentGreet: {
		"ola", "oi", "bom dia", "boa tarde", "boa noite", "hello", "hi",
	},
	models.IntentHelp: {
		"ajuda", "ajudar", "socorro", "como usar", "help", "usage",
	},
	models.IntentAbout: {
		"quem e voce", "sobre voce", "o que voce faz", "about you", "who are you",
	},
}

// Classify scores the query against the keyword table. Confidence grows
// with match count and saturates; no match at all yields help with zero
// confidence.
func (r *Router) Classify(queryText string) models.Intent {
	text := normalize(queryText)
	if text == "" {
		return models.Intent{Kind: models.IntentHelp, Confidence: 0}
	}

	best := models.IntentHelp
	bestScore := 0
	// Stable iteration so ties always resolve the same way.
	for _, kind := range []models.IntentKind{
		models.IntentInvestigate, models.IntentAnalyze, models.IntentReport,
		models.IntentExplain, models.IntentGreet, models.IntentHelp, models.IntentAbout,
	} {
		score := 0
		for _, kw := range intentKeywords[kind] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = kind, score
		}
	}

	if bestScore == 0 {
		// Substantive unmatched queries about data still read as analysis
		// if they carry entities; otherwise ask for help.
		if len(ExtractEntities(queryText)) >= 2 {
			return models.Intent{Kind: models.IntentAnalyze, Confidence: 0.6}
		}
		return models.Intent{Kind: models.IntentHelp, Confidence: 0.3}
	}

	confidence := 0.5 + 0.15*float64(bestScore)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return models.Intent{Kind: best, Confidence: confidence}
}

// SelectWorkers maps (intent, entity types) to worker kinds. Deterministic:
// same inputs produce the same ordered selection; ties break on declared
// kind priority. Confidence below the threshold forces the help path.
func (r *Router) SelectWorkers(intent models.Intent, entities []models.Entity) []string {
	if intent.Confidence < helpThreshold {
		return []string{"router"}
	}

	selected := make(map[string]bool)
	switch intent.Kind {
	case models.IntentInvestigate:
		selected["anomaly_detector"] = true
		selected["corruption_detector"] = true
		selected["aggregator"] = true
		selected["report_writer"] = true
	case models.IntentAnalyze:
		selected["pattern_analyzer"] = true
		selected["aggregator"] = true
		selected["report_writer"] = true
	case models.IntentReport:
		selected["aggregator"] = true
		selected["report_writer"] = true
	case models.IntentExplain:
		selected["textual_analyzer"] = true
	default:
		return []string{"router"}
	}

	for _, e := range entities {
		switch e.Type {
		case models.EntityState, models.EntityMunicipality:
			selected["regional_analyst"] = true
		case models.EntityAmount:
			selected["anomaly_detector"] = true
		case models.EntityIdentifier:
			selected["legal_checker"] = true
		}
	}

	kinds := make([]string, 0, len(selected))
	for name := range selected {
		kinds = append(kinds, name)
	}
	sort.Slice(kinds, func(i, j int) bool {
		pi, pj := r.priorityOf(kinds[i]), r.priorityOf(kinds[j])
		if pi != pj {
			return pi > pj
		}
		return kinds[i] < kinds[j]
	})

	if len(kinds) == 0 {
		return []string{"router"}
	}
	return kinds
}

func (r *Router) priorityOf(kind string) int {
	spec, err := r.catalog.Lookup(kind)
	if err != nil {
		return 0
	}
	return spec.Priority
}

// normalize lowercases and strips the accents that matter for keyword
// matching in pt-BR.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(
		"á", "a", "à", "a", "â", "a", "ã", "a",
		"é", "e", "ê", "e",
		"í", "i",
		"ó", "o", "ô", "o", "õ", "o",
		"ú", "u", "ü", "u",
		"ç", "c",
	)
	return replacer.Replace(s)
}
