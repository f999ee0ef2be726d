// Package dataset загружает выгрузку заказов из JSON-файла.
//
// Чтение и разбор — единственный фатальный путь: всё, что происходит после
// успешного декодирования, оформляется как замечание к данным, а не ошибка.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vladislavdragonenkov/orderaudit/internal/domain"
)

// Load читает файл по пути и декодирует его в Dataset.
func Load(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetRead, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode разбирает JSON-документ выгрузки из произвольного reader.
func Decode(r io.Reader) (*domain.Dataset, error) {
	var ds domain.Dataset
	dec := json.NewDecoder(r)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetParse, err)
	}
	return &ds, nil
}
