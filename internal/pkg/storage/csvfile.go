package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Pacote storage concentra a leitura e a escrita dos arquivos tabulares
// (catálogo e histórico de vendas). O formato é CSV com linha de cabeçalho
// obrigatória; cada gravação reescreve o arquivo inteiro.

// ReadRows lê todas as linhas de dados de um arquivo CSV, descartando a
// linha de cabeçalho. Um arquivo inexistente não é erro: devolve nil,
// porque a primeira execução do programa começa sem dados.
func ReadRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "falha ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Linhas manuais podem ter contagem de campos inconsistente; a camada
	// de repositório decide o que descartar.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", path)
	}

	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// WriteRows reescreve o arquivo inteiro com o cabeçalho e as linhas dadas.
// A escrita é atômica: grava em um arquivo temporário no mesmo diretório e
// renomeia por cima do destino, para que uma falha no meio da escrita nunca
// deixe o arquivo original corrompido.
func WriteRows(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "falha ao criar arquivo temporário em %s", dir)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao escrever cabeçalho de %s", path)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return errors.Wrapf(err, "falha ao escrever linha de %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao descarregar %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao fechar arquivo temporário de %s", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "falha ao substituir %s", path)
	}
	return nil
}
