package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/arsenstet/quizzy-cards-bot/internal/config"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// WordsS is the item provider and translator seam of the quiz engine: it
// turns raw text (or a link) into an ordered keyword list and resolves
// reference answers for single words.
type WordsS struct {
	google   GoogleTranslateAPII
	myMemory MyMemoryAPII
	article  ArticleAPII
	cfg      config.QuizConfig
	log      *zap.Logger
}

func NewWordsService(api APII, cfg config.QuizConfig, log *zap.Logger) *WordsS {
	return &WordsS{
		google:   api,
		myMemory: api,
		article:  api,
		cfg:      cfg,
		log:      log,
	}
}

// Items extracts up to cfg.MaxWords learning items from text. A link is
// fetched first and its paragraph text analyzed instead. Order follows the
// first occurrence in the source.
func (w *WordsS) Items(ctx context.Context, text string) ([]string, error) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		article, err := w.article.ExtractText(ctx, text)
		if err != nil {
			w.log.Warn("failed to extract article text", zap.String("url", text), zap.Error(err))
			return nil, errors.Join(ErrExtractionFailed, err)
		}
		text = article
	}

	words, err := extractKeywords(text, w.cfg.MaxWords)
	if err != nil {
		return nil, errors.Join(ErrExtractionFailed, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no keywords found", ErrExtractionFailed)
	}

	return words, nil
}

// Reference resolves the expected answer for word. The primary translator
// is tried first, MyMemory second; both results are case-folded so answer
// comparison is a plain equality check.
func (w *WordsS) Reference(ctx context.Context, word, sourceLang string) (string, error) {
	translated, err := w.google.Translate(ctx, word, w.cfg.TargetLanguage)
	if err == nil && translated != "" {
		return translated, nil
	}
	if err != nil {
		w.log.Warn("primary translator failed, trying fallback",
			zap.String("word", word),
			zap.Error(err),
		)
	}

	if sourceLang == "" {
		sourceLang = "en"
	}
	result, ferr := w.myMemory.TranslatePair(ctx, word, sourceLang, w.cfg.TargetLanguage)
	if ferr != nil {
		return "", errors.Join(ErrTranslationFailed, ferr)
	}
	if result.Text == "" {
		return "", fmt.Errorf("%w: empty translation for %q", ErrTranslationFailed, word)
	}

	return strings.ToLower(strings.TrimSpace(result.Text)), nil
}

// extractKeywords keeps nouns, adjectives and verbs, drops stopwords and
// non-alphabetic tokens, lowercases, dedupes preserving first occurrence
// and caps the result at max.
func extractKeywords(text string, max int) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var words []string

	for _, tok := range doc.Tokens() {
		if !keywordTag(tok.Tag) {
			continue
		}

		word := strings.ToLower(tok.Text)
		if len(word) < 2 || !isAlpha(word) || stopwords[word] || seen[word] {
			continue
		}

		seen[word] = true
		words = append(words, word)
		if len(words) == max {
			break
		}
	}

	return words, nil
}

// keywordTag reports whether a Penn Treebank tag marks a noun, adjective
// or verb.
func keywordTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "JJ") ||
		strings.HasPrefix(tag, "VB")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// stopwords are frequent English words that tag as nouns or verbs but make
// useless quiz items.
var stopwords = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "done": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"get": true, "got": true, "go": true, "goes": true, "went": true,
	"make": true, "made": true, "take": true, "took": true,
	"thing": true, "things": true, "way": true, "ways": true,
	"lot": true, "lots": true, "bit": true, "kind": true, "sort": true,
	"one": true, "ones": true, "other": true, "others": true,
	"same": true, "such": true, "own": true, "many": true, "much": true,
	"more": true, "most": true, "some": true, "few": true,
	"time": true, "times": true, "day": true, "days": true,
	"year": true, "years": true, "people": true, "man": true, "men": true,
	"say": true, "says": true, "said": true, "see": true, "saw": true,
	"know": true, "knew": true, "think": true, "thought": true,
	"come": true, "came": true, "use": true, "used": true,
	"find": true, "found": true, "give": true, "gave": true,
	"tell": true, "told": true, "want": true, "need": true,
	"let": true, "put": true, "seem": true, "keep": true,
	"good": true, "new": true, "first": true, "last": true,
	"long": true, "great": true, "little": true, "old": true,
	"big": true, "high": true, "small": true, "large": true,
	"right": true, "early": true, "able": true, "sure": true,
}
