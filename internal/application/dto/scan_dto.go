package dto

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// ScanRequest código leído por la simulación de escaneo QR.
type ScanRequest struct {
	Code string `json:"code"`
}

// ScanResult resultado del escaneo: el item si el código resolvió a uno.
type ScanResult struct {
	Code  string       `json:"code"`
	Found bool         `json:"found"`
	Item  *entity.Item `json:"item,omitempty"`
}
