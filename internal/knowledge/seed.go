package knowledge

// SeedEntries returns the built-in curriculum. The persistent variant can
// extend this set at runtime through the privileged knowledge endpoint.
func SeedEntries() []Entry {
	return []Entry{
		{
			ID:      1,
			Subject: SubjectMathematics,
			Topic:   "Ecuaciones lineales",
			Content: "Una ecuación lineal es una igualdad matemática entre dos expresiones algebraicas, " +
				"donde las variables tienen exponente 1. La forma general es ax + b = 0, donde 'a' y 'b' son " +
				"constantes y 'x' es la variable. Para resolver: 1) Aislar la variable, 2) Realizar operaciones " +
				"inversas, 3) Verificar la solución. Ejemplo: 2x + 5 = 11, entonces 2x = 6, por lo tanto x = 3.",
			Keywords:   []string{"ecuacion", "lineal", "variable", "resolver", "algebra"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      2,
			Subject: SubjectMathematics,
			Topic:   "Teorema de Pitágoras",
			Content: "El teorema de Pitágoras establece que en un triángulo rectángulo, el cuadrado " +
				"de la hipotenusa es igual a la suma de los cuadrados de los catetos. Fórmula: a² + b² = c², " +
				"donde c es la hipotenusa y a, b son los catetos. Se usa para calcular distancias y en " +
				"problemas de geometría. Ejemplo: si a=3 y b=4, entonces c² = 9 + 16 = 25, por lo tanto c=5.",
			Keywords:   []string{"pitagoras", "triangulo", "rectangulo", "hipotenusa", "catetos"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      3,
			Subject: SubjectMathematics,
			Topic:   "Funciones cuadráticas",
			Content: "Una función cuadrática tiene la forma f(x) = ax² + bx + c, donde a ≠ 0. " +
				"Su gráfica es una parábola. El vértice está en x = -b/2a. El discriminante Δ = b² - 4ac " +
				"determina el número de raíces reales. Si Δ > 0: dos raíces, Δ = 0: una raíz, Δ < 0: sin raíces reales. " +
				"La parábola abre hacia arriba si a > 0, hacia abajo si a < 0.",
			Keywords:   []string{"funcion", "cuadratica", "parabola", "vertice", "discriminante"},
			Difficulty: DifficultyIntermediate,
		},
		{
			ID:      4,
			Subject: SubjectPhysics,
			Topic:   "Leyes de Newton",
			Content: "Las tres leyes de Newton son fundamentales en mecánica: 1) Primera ley (inercia): " +
				"Un objeto en reposo permanece en reposo y uno en movimiento continúa en movimiento rectilíneo " +
				"uniforme, a menos que actúe una fuerza externa. 2) Segunda ley: F = ma, la fuerza es igual " +
				"a masa por aceleración. 3) Tercera ley: A toda acción corresponde una reacción igual y opuesta. " +
				"Estas leyes explican el comportamiento de los objetos en movimiento.",
			Keywords:   []string{"newton", "fuerza", "inercia", "aceleracion", "masa"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      5,
			Subject: SubjectPhysics,
			Topic:   "Energía cinética y potencial",
			Content: "La energía cinética es la energía que posee un objeto debido a su movimiento: " +
				"Ec = ½mv². La energía potencial gravitatoria es la energía almacenada debido a la posición: " +
				"Ep = mgh. La energía mecánica total se conserva en ausencia de fuerzas no conservativas: " +
				"Em = Ec + Ep = constante. Ejemplo: una pelota en el aire intercambia energía cinética y potencial.",
			Keywords:   []string{"energia", "cinetica", "potencial", "movimiento", "conservacion"},
			Difficulty: DifficultyIntermediate,
		},
		{
			ID:      6,
			Subject: SubjectChemistry,
			Topic:   "Tabla periódica",
			Content: "La tabla periódica organiza los elementos químicos por número atómico creciente. " +
				"Los elementos en la misma columna (grupo) tienen propiedades similares. Los períodos son las " +
				"filas horizontales. Los grupos principales son: metales alcalinos (grupo 1), halógenos (grupo 17), " +
				"gases nobles (grupo 18). Las propiedades periódicas incluyen radio atómico, energía de ionización. " +
				"Fue creada por Mendeleev y es fundamental para entender la química.",
			Keywords:   []string{"tabla", "periodica", "elementos", "grupos", "periodos"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      7,
			Subject: SubjectChemistry,
			Topic:   "Enlaces químicos",
			Content: "Los enlaces químicos unen átomos para formar compuestos. Tipos principales: " +
				"1) Enlace iónico: transferencia de electrones entre metal y no metal. 2) Enlace covalente: " +
				"compartición de electrones entre no metales. 3) Enlace metálico: mar de electrones en metales. " +
				"La electronegatividad determina el tipo de enlace. Los enlaces determinan las propiedades de los compuestos.",
			Keywords:   []string{"enlace", "ionico", "covalente", "metalico", "electronegatividad"},
			Difficulty: DifficultyIntermediate,
		},
		{
			ID:      8,
			Subject: SubjectBiology,
			Topic:   "La célula",
			Content: "La célula es la unidad básica de la vida. Tipos: procariotas (sin núcleo definido, " +
				"como bacterias) y eucariotas (con núcleo, como plantas y animales). Partes principales de célula " +
				"eucariota: membrana plasmática, citoplasma, núcleo, mitocondrias, retículo endoplasmático, " +
				"aparato de Golgi, ribosomas. En plantas también: cloroplastos y pared celular. Todas las " +
				"funciones vitales ocurren en la célula.",
			Keywords:   []string{"celula", "procariota", "eucariota", "nucleo", "organelos"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      9,
			Subject: SubjectBiology,
			Topic:   "Fotosíntesis",
			Content: "La fotosíntesis es el proceso por el cual las plantas convierten luz solar, " +
				"CO₂ y agua en glucosa y oxígeno. Ecuación: 6CO₂ + 6H₂O + luz → C₆H₁₂O₆ + 6O₂. " +
				"Ocurre en cloroplastos, tiene dos fases: reacciones lumínicas (tilacoides) y ciclo de Calvin (estroma). " +
				"Es fundamental para la vida en la Tierra ya que produce oxígeno y alimento.",
			Keywords:   []string{"fotosintesis", "clorofila", "glucosa", "oxigeno", "cloroplastos"},
			Difficulty: DifficultyIntermediate,
		},
		{
			ID:      10,
			Subject: SubjectHistory,
			Topic:   "Revolución Industrial",
			Content: "La Revolución Industrial (siglos XVIII-XIX) transformó la sociedad agraria en industrial. " +
				"Comenzó en Inglaterra con la máquina de vapor, textiles y ferrocarriles. Cambios: urbanización, " +
				"nuevas clases sociales (burguesía y proletariado), avances tecnológicos. Consecuencias: mejora en " +
				"producción, pero también problemas laborales y ambientales. Marcó el inicio de la era moderna.",
			Keywords:   []string{"revolucion", "industrial", "maquina", "vapor", "urbanizacion"},
			Difficulty: DifficultyIntermediate,
		},
		{
			ID:      11,
			Subject: SubjectGeography,
			Topic:   "Coordenadas geográficas",
			Content: "Las coordenadas geográficas son un sistema para localizar cualquier punto en la Tierra. " +
				"Latitud: distancia angular desde el Ecuador (0° a 90° Norte o Sur). Longitud: distancia angular " +
				"desde el meridiano de Greenwich (0° a 180° Este u Oeste). Se expresan en grados, minutos y segundos. " +
				"Permiten ubicación precisa usando GPS y mapas.",
			Keywords:   []string{"coordenadas", "latitud", "longitud", "meridiano", "paralelo"},
			Difficulty: DifficultyBasic,
		},
		{
			ID:      12,
			Subject: SubjectLanguage,
			Topic:   "Análisis sintáctico",
			Content: "El análisis sintáctico estudia la estructura de las oraciones. Elementos principales: " +
				"Sujeto (quien realiza la acción) y Predicado (lo que se dice del sujeto). El sujeto puede ser " +
				"simple, compuesto o tácito. El predicado puede ser verbal o nominal. Complementos: directo, " +
				"indirecto, circunstancial. Permite entender cómo se organizan las palabras para crear significado.",
			Keywords:   []string{"sintaxis", "sujeto", "predicado", "complemento", "oracion"},
			Difficulty: DifficultyIntermediate,
		},
	}
}
