package respond

import (
	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/nlp"
)

// responseTemplates keys every question type to its template set at
// compile time. Templates use {topic} and {content} placeholders. Types
// without their own set fall back to the general set explicitly in the
// composer, never through a silent map miss.
var responseTemplates = map[nlp.QuestionType][]string{
	nlp.TypeDefinition: {
		"Te explico qué es {topic}: {content}",
		"El concepto de {topic} se refiere a: {content}",
		"{topic} se define como: {content}",
	},
	nlp.TypeExplanation: {
		"Te explico cómo funciona {topic}: {content}",
		"Para entender {topic}, es importante saber que: {content}",
		"El proceso de {topic} funciona así: {content}",
	},
	nlp.TypeCalculation: {
		"Para resolver este tipo de problema sobre {topic}: {content}",
		"Los pasos para calcular {topic} son: {content}",
		"Te ayudo con el cálculo de {topic}: {content}",
	},
	nlp.TypeComparison: {
		"La diferencia entre estos conceptos de {topic} es: {content}",
		"Comparando estos elementos de {topic}: {content}",
		"Para distinguir entre estos conceptos de {topic}: {content}",
	},
	nlp.TypeExample: {
		"Aquí tienes un ejemplo de {topic}: {content}",
		"Para ilustrar {topic}, considera esto: {content}",
		"Un caso práctico de {topic} sería: {content}",
	},
	nlp.TypeGeneral: {
		"Sobre {topic}: {content}",
		"En relación a {topic}: {content}",
		"Respecto a {topic}: {content}",
	},
}

var encouragements = []string{
	"¡Excelente pregunta!",
	"Me alegra que preguntes sobre esto.",
	"Es muy bueno que tengas curiosidad por este tema.",
	"Esa es una pregunta muy inteligente.",
}

var learningTips = []string{
	"💡 Consejo: Practica con ejercicios similares para reforzar este concepto.",
	"📚 Tip de estudio: Haz un resumen de los puntos clave.",
	"🎯 Recomendación: Relaciona este tema con ejemplos de la vida real.",
	"✨ Sugerencia: Explica este concepto a alguien más para consolidar tu aprendizaje.",
}

var followUps = []string{
	"¿Te gustaría que profundice en algún aspecto específico?",
	"¿Hay algo más sobre este tema que te interese saber?",
	"¿Necesitas ejemplos adicionales o ejercicios prácticos?",
	"¿Te quedó claro o prefieres que lo explique de otra manera?",
}

var fallbackResponses = []string{
	"Disculpa, no tengo información específica sobre esa consulta en mi base de conocimiento actual.",
	"Esa es una pregunta interesante, pero necesito más información específica para ayudarte mejor.",
	"No encuentro contenido específico para tu pregunta, pero puedo ayudarte con temas relacionados.",
}

// subjectSuggestions are canned follow-up questions sampled when the
// ranked alternates do not fill the suggestion list.
var subjectSuggestions = map[knowledge.Subject][]string{
	knowledge.SubjectMathematics: {
		"¿Cómo resolver ecuaciones cuadráticas?",
		"¿Qué son las funciones lineales?",
		"¿Cómo calcular el área de figuras geométricas?",
		"¿Qué es la trigonometría básica?",
	},
	knowledge.SubjectPhysics: {
		"¿Cómo calcular la velocidad y aceleración?",
		"¿Qué son las ondas y el sonido?",
		"¿Cómo funciona la electricidad?",
		"¿Qué es la energía y sus transformaciones?",
	},
	knowledge.SubjectChemistry: {
		"¿Cómo balancear ecuaciones químicas?",
		"¿Qué son los ácidos y bases?",
		"¿Cómo funciona la estructura atómica?",
		"¿Qué son las reacciones químicas?",
	},
	knowledge.SubjectBiology: {
		"¿Cómo funciona la respiración celular?",
		"¿Qué es la genética básica?",
		"¿Cómo funcionan los ecosistemas?",
		"¿Qué es la evolución?",
	},
}

var generalSuggestions = map[knowledge.Subject][]string{
	knowledge.SubjectMathematics: {
		"¿Cómo resolver ecuaciones lineales?",
		"¿Qué es el teorema de Pitágoras?",
		"¿Cómo graficar funciones?",
	},
	knowledge.SubjectPhysics: {
		"¿Cuáles son las leyes de Newton?",
		"¿Qué es la energía cinética?",
		"¿Cómo funciona la gravedad?",
	},
	knowledge.SubjectChemistry: {
		"¿Cómo está organizada la tabla periódica?",
		"¿Qué son los enlaces químicos?",
		"¿Cómo se forman los compuestos?",
	},
	knowledge.SubjectBiology: {
		"¿Qué es una célula?",
		"¿Cómo funciona la fotosíntesis?",
		"¿Qué es el ADN?",
	},
	knowledge.SubjectGeneral: {
		"¿Sobre qué materia te gustaría aprender?",
		"¿Necesitas ayuda con matemáticas, física, química o biología?",
		"¿Qué tema específico te interesa?",
	},
}

var subjectResources = map[knowledge.Subject][]Resource{
	knowledge.SubjectMathematics: {
		{
			Type:        "video",
			Title:       "Khan Academy - Matemáticas",
			Description: "Videos explicativos paso a paso",
			URL:         "https://es.khanacademy.org/math",
		},
		{
			Type:        "ejercicios",
			Title:       "Ejercicios de práctica",
			Description: "Problemas resueltos y propuestos",
			URL:         "#",
		},
	},
	knowledge.SubjectPhysics: {
		{
			Type:        "simulacion",
			Title:       "PhET Simulaciones",
			Description: "Simulaciones interactivas de física",
			URL:         "https://phet.colorado.edu/es/",
		},
	},
	knowledge.SubjectChemistry: {
		{
			Type:        "tabla",
			Title:       "Tabla Periódica Interactiva",
			Description: "Explora los elementos químicos",
			URL:         "#",
		},
	},
	knowledge.SubjectBiology: {
		{
			Type:        "diagrama",
			Title:       "Atlas de Biología",
			Description: "Diagramas y esquemas biológicos",
			URL:         "#",
		},
	},
}
