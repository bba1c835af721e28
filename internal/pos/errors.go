package pos

import "errors"

var (
	ErrUnknownRole       = errors.New("unknown role")
	ErrCheckoutForbidden = errors.New("role tidak boleh melakukan checkout")
	ErrEmptyCart         = errors.New("keranjang kosong")
	ErrInvalidPIN        = errors.New("PIN tidak valid")
	ErrPINFormat         = errors.New("PIN harus 4-12 digit angka")
	ErrInvalidAmount     = errors.New("nominal tidak valid")
)
