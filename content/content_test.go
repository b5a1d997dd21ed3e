package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muqdisho-plus/site/page"
)

func TestNavItemsCoverEveryPage(t *testing.T) {
	items := NavItems()
	assert.Len(t, items, 6)
	for i, p := range page.All() {
		assert.Equal(t, p, items[i].Value)
		assert.Equal(t, p.Label(), items[i].Label)
	}
}

func TestExactlyOnePopularPlan(t *testing.T) {
	var popular []string
	for _, p := range Plans {
		if p.Popular {
			popular = append(popular, p.Name)
		}
	}
	assert.Equal(t, []string{"Elite Pro"}, popular)
}

func TestOnlyWheyIsTagged(t *testing.T) {
	for _, p := range Products {
		if p.Name == "Whey Protein Isolate" {
			assert.Equal(t, "Top Seller", p.Tag)
		} else {
			assert.Empty(t, p.Tag, p.Name)
		}
	}
}
