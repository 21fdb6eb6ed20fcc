package cli

import "biologia-quiz-client/internal/domain"

// QuestionBank returns the fixed quiz content. The list order is the
// navigation order; correct answers are informational here, scoring happens
// server-side.
func QuestionBank() []domain.Question {
	return []domain.Question{
		{
			ID:            1,
			Text:          "¿Como se llama el triplete de nucleos que el ribosoma lee? Contiene la informacion para unir un aminoacido especifico?",
			Options:       []string{"ARN POLIMERASA", "AMINOACIDO", "ADN POLIMERASA", "CODON"},
			CorrectAnswer: "CODON",
		},
		{
			ID:            2,
			Text:          "¿QUE DIFERENCIA IMPORTANTE EXISTE ENTRE EL ADN Y EL ARN?",
			Options:       []string{"EL ADN NO SE TRADUCE", "EL ARN SE COPIA DEL ADN", "EL ARN CONTIENE URACILO", "EL ARN CONTIENE TIMINA"},
			CorrectAnswer: "EL ARN CONTIENE URACILO",
		},
		{
			ID:   3,
			Text: "¿CUAL ES LA FUNCION DEL SPLICING Y EN QUE ETAPA DEL DOGMA CENTRAL DE LA BIOLOGIA PARTICIPA?",
			Options: []string{
				"RETIRAR LOS INTRONES - TRADUCCION",
				"RETIRAR LOS EXONES - TRANSCRIPCION",
				"RETIRAR LOS INTRONES - TRANSCRIPCION",
				"RETIRAR LOS EXONES - REPLICACION",
			},
			CorrectAnswer: "RETIRAR LOS INTRONES - TRANSCRIPCION",
		},
		{
			ID:            4,
			Text:          "LA TRADUCCION ES UN PROCESO QUE PERMITE FORMAR",
			Options:       []string{"ADN", "PROTEINAS", "BASES NITROGENADAS", "ARN MENSAJERO"},
			CorrectAnswer: "PROTEINAS",
		},
		{
			ID:   5,
			Text: "¿QUE ES EL PROCESO DE TRANSCRIPCION?",
			Options: []string{
				"ES EL PROCESO DE DUPLICACION DEL ADN",
				"ES EL PROCESO DE TRADUCCION DEL ADN",
				"ES EL PROCESO DE SINTESIS DE ADN",
				"ES EL PROCESO DE SINTESIS DE ARN",
			},
			CorrectAnswer: "ES EL PROCESO DE SINTESIS DE ARN",
		},
		{
			ID:            6,
			Text:          "¿QUE CODON SEÑALA DONDE COMIENZA LA TRADUCCION?",
			Options:       []string{"UAA", "AUG", "UAG", "UCGA"},
			CorrectAnswer: "AUG",
		},
		{
			ID:   7,
			Text: "MECANISMOS INVOLUCRADOS EN LA SINTESIS DE UNA PROTEINA",
			Options: []string{
				"REPLICACION Y MITOSIS",
				"TRANSCRIPCION Y REPLICACION",
				"REPLICACION Y TRADUCCION",
				"TRANSCRIPCION Y TRADUCCION",
			},
			CorrectAnswer: "TRANSCRIPCION Y TRADUCCION",
		},
		{
			ID:            8,
			Text:          "¿A QUE SE DEBE SOMETER EL TRANSCRITO DE ARN EN EUCARIOTAS?",
			Options:       []string{"DECODIFICACION", "CORTE Y EMPALME", "TRANSCRIPCION", "TRADUCCION"},
			CorrectAnswer: "CORTE Y EMPALME",
		},
		{
			ID:   9,
			Text: "A QUE SE REFIERE EL DOGMA CENTRAL DE LA BIOLOGIA",
			Options: []string{
				"TODAS LAS CELULAS PROVIENEN DE OTRA CELULA",
				"A LA PRODUCCION DE ENERGIA EN LA MITOCONDRIA",
				"A LA OBTENCION DE ENERGIA DE FUENTES EXTERNAS A LA CELULA",
				"FLUJO DE INFORMACION GENETICA DE DNA A PROTEINA",
			},
			CorrectAnswer: "FLUJO DE INFORMACION GENETICA DE DNA A PROTEINA",
		},
		{
			ID:   10,
			Text: "LOS CODONES SON TRIPLETES DE ___ PRESENTES EN ___",
			Options: []string{
				"BASES NITROGENADAS - ARNm",
				"AMINOACIDOS - ARNr",
				"BASES NITROGENADAS - ARNt",
				"AMINOACIDOS - PROTEINAS",
			},
			CorrectAnswer: "BASES NITROGENADAS - ARNm",
		},
		{
			ID:            11,
			Text:          "ENZIMA QUE ROMPE LOS PUENTES DE HIDROGENO, DESENRROLLANDOLOS EN 2 CADENAS ANTIPARALELAS",
			Options:       []string{"PRISMA", "TOPOISOMERASA", "ADN HELICASA", "N.A"},
			CorrectAnswer: "ADN HELICASA",
		},
		{
			ID:            12,
			Text:          "EL ADN NO CONTIENE",
			Options:       []string{"TIMINA", "ADENINA", "URACILO", "GUANINA", "CITOSINA"},
			CorrectAnswer: "URACILO",
		},
		{
			ID:            13,
			Text:          "EL ARN NO CONTIENE",
			Options:       []string{"ADENINA", "GUANINA", "CITOSINA", "TIMINA", "URACILO"},
			CorrectAnswer: "TIMINA",
		},
		{
			ID:            14,
			Text:          "ENZIMA QUE UNE LOS FRAGMENTOS DE OKAZAKI",
			Options:       []string{"N.A", "LIGASA", "ARN", "POLIMERASA"},
			CorrectAnswer: "LIGASA",
		},
		{
			ID:            15,
			Text:          "ENZIMA QUE DESARROLLA LA CADENA DE ADN",
			Options:       []string{"TOPOISOMERASA", "N.A", "PRIMASA", "SEMICONSERVATIVA"},
			CorrectAnswer: "TOPOISOMERASA",
		},
		{
			ID:            16,
			Text:          "ENZIMA ENCARGADA DE LA SINTESIS DE LOS PRIMEROS CREADORES PARA LA SINTESIS DE ADN",
			Options:       []string{"TOPOISOMERASA", "PRIMASA", "N.A", "ADN HELICASA"},
			CorrectAnswer: "PRIMASA",
		},
		{
			ID:   17,
			Text: "FRAGMENTO DE ADN QUE SE SINTETIZA EN CONTRA DE LA DIRECCION DE LA HORQUILLA DE REPLICACION",
			Options: []string{
				"FRAGMENTOS DE OKAZAKI",
				"FRAGMENTOS DE ISHIKAWA",
				"FRAGMENTOS DE TANOKA",
				"FRAGMENTOS DE YAMADA",
			},
			CorrectAnswer: "FRAGMENTOS DE OKAZAKI",
		},
	}
}
