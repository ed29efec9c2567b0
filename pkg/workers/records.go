package workers

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/models"
)

// fetchResult is what a statistical worker gets back from its upstream
// fetches: decoded records plus how many sources were blocked.
type fetchResult struct {
	records    []map[string]any
	restricted int
	fetched    int
}

// fetchRecords pulls and decodes every endpoint named in the payload.
// Restricted (403/404) and circuit-open sources degrade the result instead
// of failing it; a worker with zero usable sources still answers, at low
// quality.
func fetchRecords(ctx context.Context, deps Deps, msg *models.WorkerMessage, defaultEndpoints []string) (*fetchResult, error) {
	endpoints := stringsPayload(msg.Payload, "endpoints")
	if len(endpoints) == 0 {
		endpoints = defaultEndpoints
	}
	params := paramsPayload(msg.Payload)
	log := logging.FromContext(ctx)

	if hint, _ := msg.Payload["improvement_hint"].(string); hint == "broaden_filters" && len(params) > 0 {
		// Retry pass: keep only the year filter so the query covers more
		// records than the first attempt.
		widened := make(map[string]string, 1)
		if ano, ok := params["ano"]; ok {
			widened["ano"] = ano
		}
		params = widened
		log.Info("Widened fetch filters after reflection", "endpoints", endpoints)
	}

	result := &fetchResult{}
	for _, endpoint := range endpoints {
		payload, err := deps.Federator.Fetch(ctx, endpoint, params)
		if err != nil {
			switch apperr.KindOf(err) {
			case apperr.KindCircuitOpen, apperr.KindUpstream, apperr.KindRateLimited:
				log.Warn("Source unavailable, continuing without it", "endpoint", endpoint, "error", err)
				continue
			default:
				return nil, err
			}
		}
		result.fetched++
		if payload.Restricted {
			result.restricted++
			continue
		}
		result.records = append(result.records, decodeRecords(payload.Body)...)
	}
	return result, nil
}

// decodeRecords extracts a flat record list from an opaque upstream body.
// Accepts a bare JSON array or an object wrapping the list under a known
// key; anything else yields no records.
func decodeRecords(body []byte) []map[string]any {
	var direct []map[string]any
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil
	}
	for _, key := range []string{"items", "data", "resultado", "registros", "dados", "lista"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}
	return nil
}

// amountOf extracts the monetary value of a record, trying the field names
// the portals actually use. Brazilian decimal commas are handled.
func amountOf(record map[string]any) (float64, bool) {
	for _, key := range []string{"valor", "valorContrato", "valorTotal", "valor_total", "valorInicial", "valorLiquidado", "amount", "vlrLiquido"} {
		v, ok := record[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case string:
			s := strings.ReplaceAll(strings.ReplaceAll(t, ".", ""), ",", ".")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// fieldOf reads the first present string field among names.
func fieldOf(record map[string]any, names ...string) string {
	for _, name := range names {
		if s, ok := record[name].(string); ok && s != "" {
			return s
		}
		if nested, ok := record[name].(map[string]any); ok {
			for _, inner := range []string{"nome", "name", "razaoSocial"} {
				if s, ok := nested[inner].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}
