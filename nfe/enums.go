package nfe

import "github.com/signadot/go-dfe/scalar"

// OrigemMercadoria is the origin of the goods (N11).
type OrigemMercadoria int

const (
	OrigemNacional OrigemMercadoria = iota
	OrigemEstrangeiraImportacaoDireta
	OrigemEstrangeiraMercadoInterno
	OrigemNacionalImportacaoSuperior40
	OrigemNacionalProcessosBasicos
	OrigemNacionalImportacaoInferior40
	OrigemEstrangeiraImportacaoDiretaSemSimilar
	OrigemEstrangeiraMercadoInternoSemSimilar
	OrigemNacionalImportacaoSuperior70
)

var Origens = scalar.MustCodeTable("orig", map[OrigemMercadoria]string{
	OrigemNacional:                              "0",
	OrigemEstrangeiraImportacaoDireta:           "1",
	OrigemEstrangeiraMercadoInterno:             "2",
	OrigemNacionalImportacaoSuperior40:          "3",
	OrigemNacionalProcessosBasicos:              "4",
	OrigemNacionalImportacaoInferior40:          "5",
	OrigemEstrangeiraImportacaoDiretaSemSimilar: "6",
	OrigemEstrangeiraMercadoInternoSemSimilar:   "7",
	OrigemNacionalImportacaoSuperior70:          "8",
})

// ModalidadeBC is how the ICMS base is determined (N13).
type ModalidadeBC int

const (
	ModBCMargemValorAgregado ModalidadeBC = iota
	ModBCPauta
	ModBCPrecoTabelado
	ModBCValorOperacao
)

var ModalidadesBC = scalar.MustCodeTable("modBC", map[ModalidadeBC]string{
	ModBCMargemValorAgregado: "0",
	ModBCPauta:               "1",
	ModBCPrecoTabelado:       "2",
	ModBCValorOperacao:       "3",
})

// ModalidadeBCST is how the ICMS ST base is determined (N18).
type ModalidadeBCST int

const (
	ModBCSTPrecoTabelado ModalidadeBCST = iota
	ModBCSTListaNegativa
	ModBCSTListaPositiva
	ModBCSTListaNeutra
	ModBCSTMargemValorAgregado
	ModBCSTPauta
	ModBCSTValorOperacao
)

var ModalidadesBCST = scalar.MustCodeTable("modBCST", map[ModalidadeBCST]string{
	ModBCSTPrecoTabelado:       "0",
	ModBCSTListaNegativa:       "1",
	ModBCSTListaPositiva:       "2",
	ModBCSTListaNeutra:         "3",
	ModBCSTMargemValorAgregado: "4",
	ModBCSTPauta:               "5",
	ModBCSTValorOperacao:       "6",
})

// TipoNF is the operation direction (B11).
type TipoNF int

const (
	Entrada TipoNF = iota
	Saida
)

var TiposNF = scalar.MustCodeTable("tpNF", map[TipoNF]string{
	Entrada: "0",
	Saida:   "1",
})

// CRT is the issuer's tax regime (C21).
type CRT int

const (
	CRTSimplesNacional CRT = iota + 1
	CRTSimplesNacionalExcesso
	CRTRegimeNormal
)

var CRTs = scalar.MustCodeTable("CRT", map[CRT]string{
	CRTSimplesNacional:        "1",
	CRTSimplesNacionalExcesso: "2",
	CRTRegimeNormal:           "3",
})
