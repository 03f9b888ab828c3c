package intelligence

// DefaultKeywordTable devuelve la tabla de palabras clave por defecto,
// orientada a ferretería. El orden importa: define el desempate del sugeridor.
// En producción se reemplaza por la tabla cargada desde configuración
// (CATEGORY_KEYWORDS_PATH); esta copia embebida mantiene el servicio usable
// sin archivo externo.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		{Category: "Herramientas", Keywords: []string{
			"martillo", "destornillador", "alicate", "taladro", "llave", "sierra",
			"serrucho", "nivel", "flexometro", "lima", "acero", "pinza",
		}},
		{Category: "Tornillería", Keywords: []string{
			"tornillo", "tuerca", "arandela", "clavo", "perno", "chazo", "remache", "grapa",
		}},
		{Category: "Eléctricos", Keywords: []string{
			"cable", "bombillo", "interruptor", "toma", "breaker", "multitoma",
			"extension", "clavija", "voltaje",
		}},
		{Category: "Plomería", Keywords: []string{
			"tubo", "tuberia", "pvc", "codo", "valvula", "manguera", "sifon",
			"teflon", "registro", "griferia",
		}},
		{Category: "Pinturas", Keywords: []string{
			"pintura", "vinilo", "esmalte", "brocha", "rodillo", "thinner",
			"estuco", "sellador", "laca",
		}},
		{Category: "Adhesivos", Keywords: []string{
			"pegante", "silicona", "cinta", "epoxico", "soldadura", "colbon",
		}},
		{Category: "Seguridad Industrial", Keywords: []string{
			"guante", "casco", "gafas", "tapabocas", "arnes", "botas", "candado", "overol",
		}},
	}
}
