package chatbot

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

var (
	firstNumberRe  = regexp.MustCompile(`\d+`)
	targetQtyRe    = regexp.MustCompile(`(?i)(?:^|\s)(?:à|a)\s*(\d+)`)
	categoryNameRe = regexp.MustCompile(`(?i)cat[ée]gorie\s+(.+)`)
)

var (
	addStockStopwords = wordSet("ajoute", "ajouter", "ajoutez", "au", "aux", "a", "stock", "de", "des", "du", "la", "le", "les", "un", "une", "unite", "unites", "produit")
	// articulos/preposiciones que abren el fragmento de producto en "change le stock de X à N"
	setStockArticles  = wordSet("de", "du", "des", "la", "le", "les")
	setStockStopwords = wordSet("change", "changer", "changez", "met", "mets", "mettre", "modifie", "modifier", "modifiez", "defini", "definis", "definir",
		"le", "la", "les", "de", "du", "des", "stock", "quantite", "un", "une", "au")
	infoStopwords = wordSet("info", "infos", "information", "informations", "detail", "details", "sur", "de", "du", "des", "le", "la", "les",
		"combien", "y", "a", "t", "il", "a-t-il", "y-a-t-il", "en", "reste", "stock", "produit", "unites", "moi", "donne", "quel", "quelle", "est")
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// cleanWords separa por espacios, recorta puntuación y elisiones (l', d') y descarta stopwords.
// Conserva la grafía original de cada palabra.
func cleanWords(text string, stop map[string]bool) []string {
	var out []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool { return unicode.IsPunct(r) && r != '-' })
		for _, elision := range []string{"l'", "d'", "l’", "d’"} {
			if len(w) > len(elision) && strings.HasPrefix(strings.ToLower(w), elision) {
				w = w[len(elision):]
				break
			}
		}
		if w == "" || isStopword(w, stop) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// isStopword una palabra con guiones ("reste-t-il") es stopword si lo son todas sus partes.
func isStopword(w string, stop map[string]bool) bool {
	n := textnorm.Normalize(w)
	if stop[n] {
		return true
	}
	if !strings.Contains(n, "-") {
		return false
	}
	for _, part := range strings.Split(n, "-") {
		if part != "" && !stop[part] {
			return false
		}
	}
	return true
}

// extractFirstNumber primer entero del texto y el texto sin esa ocurrencia.
func extractFirstNumber(raw string) (int, string, bool) {
	loc := firstNumberRe.FindStringIndex(raw)
	if loc == nil {
		return 0, raw, false
	}
	n, err := strconv.Atoi(raw[loc[0]:loc[1]])
	if err != nil {
		return 0, raw, false
	}
	return n, raw[:loc[0]] + raw[loc[1]:], true
}

// extractTargetQuantity busca la última ocurrencia de "à N" / "a N". Devuelve la cantidad
// y el texto previo, que contiene el nombre del producto.
func extractTargetQuantity(raw string) (int, string, bool) {
	all := targetQtyRe.FindAllStringSubmatchIndex(raw, -1)
	if len(all) == 0 {
		return 0, "", false
	}
	last := all[len(all)-1]
	n, err := strconv.Atoi(raw[last[2]:last[3]])
	if err != nil {
		return 0, "", false
	}
	return n, raw[:last[0]], true
}

// setStockFragment toma las palabras tras el primer artículo ("de", "la"...) y quita stopwords.
// Sin artículo usa todo el prefijo.
func setStockFragment(prefix string) string {
	words := strings.Fields(prefix)
	start := 0
	for i, w := range words {
		if setStockArticles[textnorm.Normalize(w)] {
			start = i + 1
			break
		}
	}
	return strings.Join(cleanWords(strings.Join(words[start:], " "), setStockStopwords), " ")
}

// extractCategoryName texto tras la palabra "catégorie".
func extractCategoryName(raw string) (string, bool) {
	m := categoryNameRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	name = strings.TrimRightFunc(name, func(r rune) bool { return r == '.' || r == '!' || r == '?' })
	name = strings.TrimSpace(name)
	return name, name != ""
}

// singular quita la s/x final de las palabras de más de tres letras ("claviers" -> "clavier").
func singular(fragment string) string {
	words := strings.Fields(fragment)
	for i, w := range words {
		if len([]rune(w)) <= 3 {
			continue
		}
		lw := strings.ToLower(w)
		if strings.HasSuffix(lw, "s") || strings.HasSuffix(lw, "x") {
			words[i] = w[:len(w)-1]
		}
	}
	return strings.Join(words, " ")
}
