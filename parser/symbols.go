package parser

// symbols maps a macro name to the literal glyph or spacing string it
// renders as. Built once at init and never mutated, so concurrent
// parsers may read it without synchronization.
var symbols = map[string]string{
	"Alpha":   "Α",
	"Beta":    "Β",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Epsilon": "Ε",
	"Zeta":    "Ζ",
	"Eta":     "Η",
	"Theta":   "Θ",
	"Lambda":  "Λ",
	"Xi":      "Ξ",
	"Pi":      "Π",
	"Sigma":   "Σ",
	"Phi":     "Φ",
	"Psi":     "Ψ",
	"Omega":   "Ω",

	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"lambda":  "λ",
	"xi":      "ξ",
	"pi":      "π",
	"sigma":   "σ",
	"phi":     "φ",
	"psi":     "ψ",
	"omega":   "ω",

	"infty":  "∞",
	"approx": "≈",
	"neq":    "≠",
	"le":     "≤",
	"ge":     "≥",
	"pm":     "±",
	"cdot":   "∙",
	"to":     "→",

	"thinspace": " ",
	"quad":      "  ",
	"'":         "'",
}

// functions are the operator names spelled upright as literal words.
var functions = map[string]bool{
	"sin":  true,
	"cos":  true,
	"tan":  true,
	"log":  true,
	"ln":   true,
	"lg":   true,
	"exp":  true,
	"sinh": true,
	"cosh": true,
	"asin": true,
	"acos": true,
}
