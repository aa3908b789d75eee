package nlp

import "github.com/edu-assistant/backend/internal/knowledge"

// subjectKeywords is the canonical keyword table shared by the subject
// classifier and anything else that needs per-subject vocabulary. Matching
// is plain substring containment, not word-boundary matching, so a keyword
// embedded in a longer word also scores (e.g. "paralelo" inside
// "paralelogramo"). That imprecision is intentional and kept as-is.
var subjectKeywords = map[knowledge.Subject][]string{
	knowledge.SubjectMathematics: {
		"ecuacion", "algebra", "geometria", "calculo", "trigonometria",
		"derivada", "integral", "funcion", "grafica", "numero", "suma",
		"resta", "multiplicacion", "division", "fraccion", "decimal",
		"porcentaje", "probabilidad", "estadistica", "pitagoras",
		"cuadratica", "lineal", "parabola", "vertice",
	},
	knowledge.SubjectPhysics: {
		"fuerza", "energia", "movimiento", "velocidad", "aceleracion",
		"masa", "peso", "gravedad", "presion", "temperatura", "calor",
		"luz", "sonido", "electricidad", "magnetismo", "onda", "atomo",
		"molecula", "newton", "joule", "watt", "cinetica", "potencial",
	},
	knowledge.SubjectChemistry: {
		"elemento", "compuesto", "molecula", "atomo", "ion", "enlace",
		"reaccion", "acido", "base", "sal", "ph", "oxidacion", "reduccion",
		"tabla periodica", "electron", "proton", "neutron", "valencia",
		"formula", "ecuacion quimica", "ionico", "covalente",
	},
	knowledge.SubjectBiology: {
		"celula", "organismo", "tejido", "organo", "sistema", "adn",
		"gen", "cromosoma", "evolucion", "ecosistema", "biodiversidad",
		"fotosintesis", "respiracion", "digestion", "circulacion",
		"reproduccion", "herencia", "mutacion", "especie", "clorofila",
	},
	knowledge.SubjectHistory: {
		"epoca", "siglo", "guerra", "revolucion", "imperio", "dinastia",
		"civilizacion", "cultura", "sociedad", "politica", "economia",
		"arte", "religion", "filosofia", "descubrimiento", "conquista",
		"independencia", "democracia", "dictadura", "colonial",
	},
	knowledge.SubjectGeography: {
		"continente", "pais", "ciudad", "rio", "montana", "oceano",
		"clima", "relieve", "poblacion", "capital", "frontera",
		"latitud", "longitud", "meridiano", "paralelo", "mapa",
		"escala", "proyeccion", "coordenadas", "territorio",
	},
	knowledge.SubjectLanguage: {
		"gramatica", "sintaxis", "morfologia", "semantica", "fonologia",
		"verbo", "sustantivo", "adjetivo", "adverbio", "preposicion",
		"conjuncion", "articulo", "pronombre", "oracion", "sujeto",
		"predicado", "complemento", "literatura", "texto", "redaccion",
	},
}

// SubjectKeywords exposes the keyword list for one subject.
func SubjectKeywords(subject knowledge.Subject) []string {
	return subjectKeywords[subject]
}
