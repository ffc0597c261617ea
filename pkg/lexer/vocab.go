package lexer

// set is a closed word list.
type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

// Requests and verbs that open a query.
var actions = newSet(
	"muéstrame", "muestrame", "mostrar", "muestra", "dame", "dámelos", "dámelas",
	"enséñame", "ensename", "quiero", "consultar", "consulta", "ver", "visualizar",
	"verifica", "explora", "lista", "listar", "recupera", "recuperar", "busca",
	"buscar", "obtén", "obtener", "extrae", "extraer", "filtra", "filtrar",
	"accede", "acceder", "selecciona", "seleccionar", "deseo", "necesito",
)

// Quantifiers and determiners.
var quantifiers = newSet(
	"todos", "todas", "los", "las", "algunos", "algunas", "ninguno", "ninguna",
	"cada", "varios", "cualquier", "cualquiera", "muchos", "muchas", "pocos", "pocas",
	"uno", "una", "el", "la", "este", "esta", "estos", "estas",
)

var connectors = newSet(
	"que", "donde", "cuyo", "cuyos", "cual", "cuales", "si", "cuando", "mientras",
	"aunque", "y", "o",
)

// OperatorSymbols is the set of comparison operators a condition may carry.
var OperatorSymbols = newSet("=", ">", "<", ">=", "<=", "!=", "<>")

var entityIndicators = newSet("tabla", "tablas", "base", "bases", "entidad", "entidades")

var attributeIndicators = newSet("columna", "columnas", "campo", "campos", "atributo", "atributos")

// IsOperator reports whether s is a comparison operator symbol.
func IsOperator(s string) bool { return OperatorSymbols.has(s) }
