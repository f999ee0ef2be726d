package domain

import "errors"

var (
	// ErrDatasetRead — файл выгрузки не удалось прочитать.
	ErrDatasetRead = errors.New("dataset read failed")
	// ErrDatasetParse — содержимое выгрузки не является корректным документом.
	ErrDatasetParse = errors.New("dataset parse failed")
	// ErrPolicyLoad — файл политики ранжирования не удалось прочитать или разобрать.
	ErrPolicyLoad = errors.New("rank policy load failed")
)

// IsLoadError проверяет, относится ли ошибка к фатальной загрузке входных данных.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrDatasetRead) || errors.Is(err, ErrDatasetParse)
}
