package catalogrepo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"invbill/internal/domain"
	"invbill/internal/pkg/logger"
	"invbill/internal/repository/catalogrepo"
)

func tempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "inventory.csv")
}

// TestSaveThenLoad_RoundTrip verifica que gravar e recarregar o catálogo
// reproduz o mesmo conjunto de produtos.
func TestSaveThenLoad_RoundTrip(t *testing.T) {
	path := tempFile(t)
	repo := catalogrepo.NewCatalogRepository(path, logger.NewLogger("error"))

	original := []domain.Product{
		{ID: "P1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 10},
		{ID: "P2", Name: "Gadget, Deluxe", Price: decimal.RequireFromString("125.50"), Stock: 0},
	}
	assert.NoError(t, repo.SaveAll(original))

	loaded, err := repo.LoadAll()
	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	for i, p := range loaded {
		assert.Equal(t, original[i].ID, p.ID)
		assert.Equal(t, original[i].Name, p.Name)
		assert.True(t, original[i].Price.Equal(p.Price))
		assert.Equal(t, original[i].Stock, p.Stock)
	}
}

// TestLoadAll_MissingFile verifica que a primeira execução (sem arquivo)
// devolve catálogo vazio, não erro.
func TestLoadAll_MissingFile(t *testing.T) {
	repo := catalogrepo.NewCatalogRepository(tempFile(t), logger.NewLogger("error"))

	loaded, err := repo.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

// TestLoadAll_SkipsMalformedRows verifica que linhas com coluna faltando ou
// valores não numéricos são puladas sem abortar a carga.
func TestLoadAll_SkipsMalformedRows(t *testing.T) {
	path := tempFile(t)
	raw := "product_id,name,price,stock_quantity\n" +
		"P1,Widget,9.99,10\n" +
		"P2,Broken,notaprice,5\n" +
		"P3,Short,1.00\n" +
		"P4,BadStock,2.00,many\n" +
		"P5,Negative,2.00,-3\n" +
		"P6,Gadget,19.90,2\n"
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	repo := catalogrepo.NewCatalogRepository(path, logger.NewLogger("error"))
	loaded, err := repo.LoadAll()

	assert.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "P1", loaded[0].ID)
	assert.Equal(t, "P6", loaded[1].ID)
}

// TestSaveAll_WritesHeader verifica o cabeçalho obrigatório do arquivo.
func TestSaveAll_WritesHeader(t *testing.T) {
	path := tempFile(t)
	repo := catalogrepo.NewCatalogRepository(path, logger.NewLogger("error"))

	assert.NoError(t, repo.SaveAll(nil))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "product_id,name,price,stock_quantity\n", string(content))
}
