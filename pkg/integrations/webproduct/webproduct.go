package webproduct

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/model"
)

const (
	IntegrationName = "web_product"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

var (
	ErrUnsupportedURL = errors.New("unsupported url")
	ErrNoProduct      = errors.New("no product found on page")
)

type WebProductIntegration struct {
	logger *zap.Logger
}

func NewWebProductIntegration(logger *zap.Logger) *WebProductIntegration {
	return &WebProductIntegration{logger: logger}
}

type openGraph struct {
	Title       string `attr:"content" selector:"meta[property='og:title']"`
	Description string `attr:"content" selector:"meta[property='og:description']"`
	Image       string `attr:"content" selector:"meta[property='og:image']"`
	SiteName    string `attr:"content" selector:"meta[property='og:site_name']"`
	Price       string `attr:"content" selector:"meta[property='product:price:amount']"`
}

// LookupBean scrapes a product page. Structured JSON-LD Product data wins
// over OpenGraph tags, which only fill what is still missing.
func (w *WebProductIntegration) LookupBean(ctx context.Context, pageURL string) (*model.BeanDraft, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, pageURL)
	}

	collector := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	var (
		errs  error
		draft = model.BeanDraft{SourceURL: pageURL, Source: IntegrationName}
		graph openGraph
	)

	collector.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		product, err := findProduct([]byte(element.Text))
		if multierr.AppendInto(&errs, err) {
			w.logger.Warn("failed to parse JSON-LD block", zap.String("url", pageURL), zap.Error(err))

			return
		}

		if product != nil && draft.Name == "" {
			product.fill(&draft)
		}
	})

	collector.OnHTML("head", func(element *colly.HTMLElement) {
		multierr.AppendInto(&errs, element.Unmarshal(&graph))
	})

	collector.OnError(func(response *colly.Response, err error) {
		w.logger.Error("error while scraping product page", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	w.logger.Info("scraping product page", zap.String("url", pageURL))

	if err := collector.Visit(pageURL); err != nil {
		return nil, multierr.Append(err, errs)
	}

	graph.fill(&draft)

	if draft.Name == "" {
		return nil, multierr.Append(fmt.Errorf("%w: %s", ErrNoProduct, pageURL), errs)
	}

	if errs != nil {
		w.logger.Info("scraped product page with errors", zap.String("url", pageURL), zap.Error(errs))
	}

	return &draft, nil
}

func (g openGraph) fill(draft *model.BeanDraft) {
	if draft.Name == "" {
		draft.Name = strings.TrimSpace(g.Title)
	}

	if draft.Description == "" {
		draft.Description = strings.TrimSpace(g.Description)
	}

	if draft.ImageURL == "" {
		draft.ImageURL = g.Image
	}

	if draft.ShopName == "" {
		draft.ShopName = strings.TrimSpace(g.SiteName)
	}

	if !draft.Price.Valid {
		draft.Price = parsePrice(g.Price)
	}
}

type product struct {
	Name        string
	Description string
	Image       string
	Brand       string
	Price       string
}

func (p *product) fill(draft *model.BeanDraft) {
	draft.Name = strings.TrimSpace(p.Name)
	draft.Description = strings.TrimSpace(p.Description)
	draft.ImageURL = p.Image
	draft.ShopName = strings.TrimSpace(p.Brand)
	draft.Price = parsePrice(p.Price)
}

// findProduct looks for a schema.org Product in a JSON-LD document, which
// may be a single node, a list of nodes or an @graph.
func findProduct(data []byte) (*product, error) {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	return searchNode(document), nil
}

func searchNode(node any) *product {
	switch value := node.(type) {
	case []any:
		for _, item := range value {
			if found := searchNode(item); found != nil {
				return found
			}
		}
	case map[string]any:
		if hasType(value["@type"], "Product") {
			return &product{
				Name:        text(value["name"]),
				Description: text(value["description"]),
				Image:       text(value["image"]),
				Brand:       text(value["brand"]),
				Price:       offerPrice(value["offers"]),
			}
		}

		if graph, ok := value["@graph"]; ok {
			return searchNode(graph)
		}
	}

	return nil
}

func hasType(value any, want string) bool {
	switch typed := value.(type) {
	case string:
		return typed == want
	case []any:
		for _, item := range typed {
			if item == want {
				return true
			}
		}
	}

	return false
}

// text flattens the shapes JSON-LD uses for a single value: a string, a
// number, a list whose first entry counts, or a node with a name or url.
func text(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case float64:
		return decimal.NewFromFloat(typed).String()
	case []any:
		if len(typed) > 0 {
			return text(typed[0])
		}
	case map[string]any:
		for _, key := range []string{"name", "url", "contentUrl"} {
			if found := text(typed[key]); found != "" {
				return found
			}
		}
	}

	return ""
}

func offerPrice(offers any) string {
	switch typed := offers.(type) {
	case []any:
		if len(typed) > 0 {
			return offerPrice(typed[0])
		}
	case map[string]any:
		if price := text(typed["price"]); price != "" {
			return price
		}

		return text(typed["lowPrice"])
	}

	return ""
}

func parsePrice(raw string) decimal.NullDecimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}

		return -1
	}, raw)

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(price)
}
