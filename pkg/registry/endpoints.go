package registry

import "time"

// defaultEndpoints is the seeded production catalog. Grouped by upstream
// system. Rate limits follow each portal's published policy, conservatively.
var defaultEndpoints = []EndpointSpec{
	// Portal da Transparência (api.portaldatransparencia.gov.br)
	{
		Name:           "transparencia_contratos",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/contratos",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 800 * time.Millisecond,
		Capabilities:   []string{"contracts", "procurement"},
	},
	{
		Name:           "transparencia_despesas",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/despesas/por-orgao",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 900 * time.Millisecond,
		Capabilities:   []string{"expenses", "budget"},
	},
	{
		Name:           "transparencia_servidores",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/servidores",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 1200 * time.Millisecond,
		Capabilities:   []string{"servants", "payroll"},
	},
	{
		Name:           "transparencia_remuneracao",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/servidores/remuneracao",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 1200 * time.Millisecond,
		Capabilities:   []string{"payroll", "servants"},
	},
	{
		Name:           "transparencia_licitacoes",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/licitacoes",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 800 * time.Millisecond,
		Capabilities:   []string{"procurement", "bidding"},
	},
	{
		Name:           "transparencia_convenios",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/convenios",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 900 * time.Millisecond,
		Capabilities:   []string{"agreements", "transfers"},
	},
	{
		Name:           "transparencia_emendas",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/emendas",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 700 * time.Millisecond,
		Capabilities:   []string{"amendments", "budget"},
	},
	{
		Name:           "transparencia_bolsa_familia",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/bolsa-familia-por-municipio",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 1000 * time.Millisecond,
		Capabilities:   []string{"social_programs", "transfers"},
	},
	{
		Name:           "transparencia_auxilio_emergencial",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/auxilio-emergencial-por-municipio",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 1000 * time.Millisecond,
		Capabilities:   []string{"social_programs", "transfers"},
	},
	{
		Name:           "transparencia_ceis",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/ceis",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 600 * time.Millisecond,
		Capabilities:   []string{"sanctions", "companies"},
	},
	{
		Name:           "transparencia_cnep",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/cnep",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 600 * time.Millisecond,
		Capabilities:   []string{"sanctions", "companies"},
	},
	{
		Name:           "transparencia_cepim",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/cepim",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 600 * time.Millisecond,
		Capabilities:   []string{"sanctions", "ngos"},
	},
	{
		Name:           "transparencia_viagens",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/viagens",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 800 * time.Millisecond,
		Capabilities:   []string{"travel", "expenses"},
	},
	{
		Name:           "transparencia_cartoes",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/cartoes",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 800 * time.Millisecond,
		Capabilities:   []string{"corporate_cards", "expenses"},
	},
	{
		Name:           "transparencia_orgaos_siafi",
		BaseURL:        "https://api.portaldatransparencia.gov.br/api-de-dados/orgaos-siafi",
		AuthMode:       AuthAPIKey,
		AuthHeader:     "chave-api-dados",
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 400 * time.Millisecond,
		Capabilities:   []string{"agencies", "reference"},
	},

	// IBGE (servicodados.ibge.gov.br) — open, no auth.
	{
		Name:           "ibge_municipios",
		BaseURL:        "https://servicodados.ibge.gov.br/api/v1/localidades/municipios",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 300 * time.Millisecond,
		Capabilities:   []string{"municipalities", "reference", "demographics"},
	},
	{
		Name:           "ibge_estados",
		BaseURL:        "https://servicodados.ibge.gov.br/api/v1/localidades/estados",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 250 * time.Millisecond,
		Capabilities:   []string{"states", "reference", "demographics"},
	},
	{
		Name:           "ibge_populacao",
		BaseURL:        "https://servicodados.ibge.gov.br/api/v3/agregados/6579/periodos/{period}/variaveis/9324",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 500 * time.Millisecond,
		Capabilities:   []string{"demographics", "population"},
	},
	{
		Name:           "ibge_pib_municipios",
		BaseURL:        "https://servicodados.ibge.gov.br/api/v3/agregados/5938/periodos/{period}/variaveis/37",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 600 * time.Millisecond,
		Capabilities:   []string{"economics", "demographics"},
	},

	// Compras.gov.br
	{
		Name:           "compras_contratos",
		BaseURL:        "https://compras.dados.gov.br/comprasContratos/v1/contratos",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     60,
		TypicalLatency: 1100 * time.Millisecond,
		Capabilities:   []string{"contracts", "procurement"},
	},
	{
		Name:           "compras_fornecedores",
		BaseURL:        "https://compras.dados.gov.br/fornecedores/v1/fornecedores",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     60,
		TypicalLatency: 1000 * time.Millisecond,
		Capabilities:   []string{"suppliers", "companies"},
	},
	{
		Name:           "compras_licitacoes",
		BaseURL:        "https://compras.dados.gov.br/licitacoes/v1/licitacoes",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     60,
		TypicalLatency: 1100 * time.Millisecond,
		Capabilities:   []string{"bidding", "procurement"},
	},

	// Plataforma +Brasil / SICONV (transfers and agreements)
	{
		Name:           "siconv_convenios",
		BaseURL:        "https://api.plataformamaisbrasil.gov.br/api-de-dados/convenios",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     60,
		TypicalLatency: 1200 * time.Millisecond,
		Capabilities:   []string{"agreements", "transfers"},
	},
	{
		Name:           "siconv_propostas",
		BaseURL:        "https://api.plataformamaisbrasil.gov.br/api-de-dados/propostas",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     60,
		TypicalLatency: 1200 * time.Millisecond,
		Capabilities:   []string{"agreements", "proposals"},
	},

	// Banco Central (BACEN)
	{
		Name:           "bacen_selic",
		BaseURL:        "https://api.bcb.gov.br/dados/serie/bcdata.sgs.432/dados",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 400 * time.Millisecond,
		Capabilities:   []string{"economics", "reference"},
	},
	{
		Name:           "bacen_ipca",
		BaseURL:        "https://api.bcb.gov.br/dados/serie/bcdata.sgs.433/dados",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     120,
		TypicalLatency: 400 * time.Millisecond,
		Capabilities:   []string{"economics", "inflation", "reference"},
	},
	{
		Name:           "bacen_cambio",
		BaseURL:        "https://api.bcb.gov.br/dados/serie/bcdata.sgs.1/dados",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     120,
		TypicalLatency: 400 * time.Millisecond,
		Capabilities:   []string{"economics", "exchange", "reference"},
	},

	// TCU (Tribunal de Contas da União)
	{
		Name:           "tcu_acordaos",
		BaseURL:        "https://contas.tcu.gov.br/ords/condenacao/consulta/acordaos",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     30,
		TypicalLatency: 1500 * time.Millisecond,
		Capabilities:   []string{"rulings", "legal"},
	},
	{
		Name:           "tcu_inabilitados",
		BaseURL:        "https://contas.tcu.gov.br/ords/condenacao/consulta/inabilitados",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     30,
		TypicalLatency: 1200 * time.Millisecond,
		Capabilities:   []string{"sanctions", "legal"},
	},

	// Dados Abertos (dadosabertos.camara.leg.br / senado)
	{
		Name:           "camara_deputados",
		BaseURL:        "https://dadosabertos.camara.leg.br/api/v2/deputados",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     90,
		TypicalLatency: 600 * time.Millisecond,
		Capabilities:   []string{"legislators", "reference"},
	},
	{
		Name:           "camara_despesas_deputado",
		BaseURL:        "https://dadosabertos.camara.leg.br/api/v2/deputados/{id}/despesas",
		AuthMode:       AuthNone,
		TTLClass:       TTLMedium,
		RatePerMin:     90,
		TypicalLatency: 700 * time.Millisecond,
		Capabilities:   []string{"expenses", "legislators"},
	},
	{
		Name:           "senado_materias",
		BaseURL:        "https://legis.senado.leg.br/dadosabertos/materia/pesquisa/lista",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     60,
		TypicalLatency: 900 * time.Millisecond,
		Capabilities:   []string{"legislation", "reference"},
	},

	// Receita / CNPJ open data mirror
	{
		Name:           "cnpj_consulta",
		BaseURL:        "https://minhareceita.org/{cnpj}",
		AuthMode:       AuthNone,
		TTLClass:       TTLLong,
		RatePerMin:     60,
		TypicalLatency: 500 * time.Millisecond,
		Capabilities:   []string{"companies", "reference"},
	},
}
