package router

import (
	"regexp"
	"sort"
	"strings"

	"github.com/transparencia-ai/veritas/pkg/models"
)

var (
	yearRe      = regexp.MustCompile(`\b(19[89]\d|20[0-4]\d)\b`)
	dateRangeRe = regexp.MustCompile(`\b(19[89]\d|20[0-4]\d)\s*(?:a|ate|até|-|to)\s*(19[89]\d|20[0-4]\d)\b`)
	amountRe    = regexp.MustCompile(`(?i)R\$\s*([\d.]+(?:,\d+)?)(?:\s*(mil|milhao|milhão|milhoes|milhões|bilhao|bilhão|bilhoes|bilhões))?`)
	cnpjRe      = regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}\b`)
	ufRe        = regexp.MustCompile(`\b(AC|AL|AP|AM|BA|CE|DF|ES|GO|MA|MT|MS|MG|PA|PB|PR|PE|PI|RJ|RN|RS|RO|RR|SC|SP|SE|TO)\b`)
)

// stateNames maps spelled-out state names (normalized) to UF codes.
var stateNames = map[string]string{
	"acre": "AC", "alagoas": "AL", "amapa": "AP", "amazonas": "AM",
	"bahia": "BA", "ceara": "CE", "distrito federal": "DF",
	"espirito santo": "ES", "goias": "GO", "maranhao": "MA",
	"mato grosso do sul": "MS", "mato grosso": "MT", "minas gerais": "MG",
	"para": "PA", "paraiba": "PB", "parana": "PR", "pernambuco": "PE",
	"piaui": "PI", "rio de janeiro": "RJ", "rio grande do norte": "RN",
	"rio grande do sul": "RS", "rondonia": "RO", "roraima": "RR",
	"santa catarina": "SC", "sao paulo": "SP", "sergipe": "SE",
	"tocantins": "TO",
}

// agencyNames maps well-known federal agency mentions to canonical codes.
var agencyNames = map[string]string{
	"ministerio da saude":    "26000",
	"ministerio da educacao": "25000",
	"ministerio da defesa":   "52000",
	"inss":                   "37202",
	"ibama":                  "44201",
	"funai":                  "30202",
	"dnit":                   "39252",
}

// dataSourceNames maps mentions of data domains to registry capabilities.
var dataSourceNames = map[string]string{
	"contratos":  "contracts",
	"contrato":   "contracts",
	"licitacoes": "bidding",
	"licitacao":  "bidding",
	"despesas":   "expenses",
	"convenios":  "agreements",
	"convenio":   "agreements",
	"servidores": "servants",
	"emendas":    "amendments",
	"sancoes":    "sanctions",
	"viagens":    "travel",
}

// aliasOrder fixes the scan order over an alias map: longest alias first,
// so "mato grosso do sul" wins over "mato grosso" and plural forms win
// over their singular prefix; ties break lexicographically.
func aliasOrder(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

var (
	stateNameOrder  = aliasOrder(stateNames)
	agencyNameOrder = aliasOrder(agencyNames)
	dataSourceOrder = aliasOrder(dataSourceNames)
)

func spanClaimed(spans [][2]int, idx int) bool {
	for _, s := range spans {
		if idx >= s[0] && idx < s[1] {
			return true
		}
	}
	return false
}

// ExtractEntities pulls typed values out of the query text. Entities form
// a multimap: the same type may repeat. Spans are byte offsets into the
// original text where the match position is meaningful.
func ExtractEntities(queryText string) []models.Entity {
	var entities []models.Entity
	normalized := normalize(queryText)

	// Date ranges first so their years are not double-counted.
	rangeSpans := make(map[int]bool)
	for _, m := range dateRangeRe.FindAllStringSubmatchIndex(normalized, -1) {
		entities = append(entities, models.Entity{
			Type:  models.EntityDateRange,
			Value: normalized[m[2]:m[3]] + ".." + normalized[m[4]:m[5]],
			Span:  [2]int{m[0], m[1]},
		})
		rangeSpans[m[2]] = true
		rangeSpans[m[4]] = true
	}

	for _, m := range yearRe.FindAllStringIndex(normalized, -1) {
		if rangeSpans[m[0]] {
			continue
		}
		entities = append(entities, models.Entity{
			Type:  models.EntityYear,
			Value: normalized[m[0]:m[1]],
			Span:  [2]int{m[0], m[1]},
		})
	}

	// Spelled-out state names win over bare UF codes at the same spot.
	// Longest names scan first and claim their span, so "mato grosso do
	// sul" is never shadowed by "mato grosso" matching inside it.
	stateSeen := make(map[string]bool)
	var stateSpans [][2]int
	for _, name := range stateNameOrder {
		uf := stateNames[name]
		idx := strings.Index(normalized, name)
		if idx < 0 || stateSeen[uf] || spanClaimed(stateSpans, idx) {
			continue
		}
		entities = append(entities, models.Entity{
			Type:  models.EntityState,
			Value: uf,
			Span:  [2]int{idx, idx + len(name)},
		})
		stateSeen[uf] = true
		stateSpans = append(stateSpans, [2]int{idx, idx + len(name)})
	}
	// UF codes are only recognized uppercase in the original text;
	// lowercase two-letter words are too ambiguous.
	for _, m := range ufRe.FindAllStringIndex(queryText, -1) {
		uf := queryText[m[0]:m[1]]
		if !stateSeen[uf] {
			entities = append(entities, models.Entity{
				Type:  models.EntityState,
				Value: uf,
				Span:  [2]int{m[0], m[1]},
			})
			stateSeen[uf] = true
		}
	}

	for _, m := range amountRe.FindAllStringSubmatchIndex(queryText, -1) {
		entities = append(entities, models.Entity{
			Type:  models.EntityAmount,
			Value: strings.TrimSpace(queryText[m[0]:m[1]]),
			Span:  [2]int{m[0], m[1]},
		})
	}

	for _, m := range cnpjRe.FindAllStringIndex(queryText, -1) {
		entities = append(entities, models.Entity{
			Type:  models.EntityIdentifier,
			Value: queryText[m[0]:m[1]],
			Span:  [2]int{m[0], m[1]},
		})
	}

	for _, name := range agencyNameOrder {
		code := agencyNames[name]
		if idx := strings.Index(normalized, name); idx >= 0 {
			entities = append(entities, models.Entity{
				Type:  models.EntityAgency,
				Value: code,
				Span:  [2]int{idx, idx + len(name)},
			})
		}
	}

	sourceSeen := make(map[string]bool)
	for _, name := range dataSourceOrder {
		capability := dataSourceNames[name]
		if idx := strings.Index(normalized, name); idx >= 0 && !sourceSeen[capability] {
			entities = append(entities, models.Entity{
				Type:  models.EntityDataSource,
				Value: capability,
				Span:  [2]int{idx, idx + len(name)},
			})
			sourceSeen[capability] = true
		}
	}

	// Sort by span so entity order follows the query text.
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Span[0] != entities[j].Span[0] {
			return entities[i].Span[0] < entities[j].Span[0]
		}
		if entities[i].Type != entities[j].Type {
			return entities[i].Type < entities[j].Type
		}
		return entities[i].Value < entities[j].Value
	})
	return entities
}
