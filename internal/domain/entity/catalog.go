package entity

// CatalogItem fila genérica de una tabla de catálogo (id, nombre).
type CatalogItem struct {
	ID   string
	Name string
}

// Catalog identifica una tabla de catálogo del conjunto cerrado. Los
// identificadores de tabla y columna son constantes de compilación: nunca se
// construyen a partir de entrada del caller.
type Catalog struct {
	Key        string // clave estable para la API ("banks", "universities", ...)
	Table      string
	IDColumn   string
	NameColumn string
}

// Catálogos soportados. El slice Catalogs actúa como allow-list.
var (
	CatalogBanks          = Catalog{Key: "banks", Table: "banks", IDColumn: "id", NameColumn: "name"}
	CatalogUniversities   = Catalog{Key: "universities", Table: "universities", IDColumn: "id", NameColumn: "name"}
	CatalogProfessions    = Catalog{Key: "professions", Table: "professions", IDColumn: "id", NameColumn: "name"}
	CatalogKnowledgeAreas = Catalog{Key: "knowledge_areas", Table: "knowledge_areas", IDColumn: "id", NameColumn: "name"}

	Catalogs = []Catalog{CatalogBanks, CatalogUniversities, CatalogProfessions, CatalogKnowledgeAreas}
)

// CatalogByKey resuelve una clave de la API contra la allow-list.
func CatalogByKey(key string) (Catalog, bool) {
	for _, c := range Catalogs {
		if c.Key == key {
			return c, true
		}
	}
	return Catalog{}, false
}
