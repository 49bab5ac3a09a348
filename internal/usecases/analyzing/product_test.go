package analyzing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

func TestService_CategorizeProduct(t *testing.T) {
	service := NewService()

	tests := []struct {
		name            string
		productName     string
		wantCategory    string
		wantSubcategory string
	}{
		{
			name:            "EDP with audience, note and size",
			productName:     "Kenaz Men Woody EDP 100ml",
			wantCategory:    CategoryEDP,
			wantSubcategory: "Men, Woody, 100ml",
		},
		{
			name:            "women wins over the men substring",
			productName:     "Kenaz Women Floral EDT 50ml",
			wantCategory:    CategoryEDT,
			wantSubcategory: "Women, Floral, 50ml",
		},
		{
			name:            "eau de parfum spelled out",
			productName:     "Rose Eau de Parfum",
			wantCategory:    CategoryEDP,
			wantSubcategory: "Unisex, Floral",
		},
		{
			name:            "perfume oil reaches its own category",
			productName:     "Oud Perfume Oil 30ml",
			wantCategory:    CategoryPerfumeOil,
			wantSubcategory: "Unisex, Woody, 30ml",
		},
		{
			name:            "body mist",
			productName:     "Citrus Body Mist",
			wantCategory:    CategoryBodyMist,
			wantSubcategory: "Unisex, Citrus",
		},
		{
			name:            "deodorant",
			productName:     "Kenaz Deo Fresh",
			wantCategory:    CategoryDeodorant,
			wantSubcategory: "Unisex",
		},
		{
			name:            "gift set",
			productName:     "Festive Gift Set Combo",
			wantCategory:    CategoryGiftSet,
			wantSubcategory: "Unisex",
		},
		{
			name:            "bare perfume keyword defaults to EDP",
			productName:     "Classic Perfume For Male",
			wantCategory:    CategoryEDP,
			wantSubcategory: "Men",
		},
		{
			name:            "no keyword falls back to general",
			productName:     "Mystery Fragrance",
			wantCategory:    CategoryGeneral,
			wantSubcategory: "Unisex",
		},
		{
			name:            "sandalwood maps to woody",
			productName:     "Sandalwood Essence EDP",
			wantCategory:    CategoryEDP,
			wantSubcategory: "Unisex, Woody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.CategorizeProduct(context.Background(), &domain.ProductCategorizationRequest{
				NewProductName: tt.productName,
			})

			assert.Equal(t, tt.productName, result.NewProductName)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantSubcategory, result.Subcategory)
			assert.NotEmpty(t, result.Reasoning)
		})
	}
}
