package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalidHashID = errors.New("invalid hash id")

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	return hashids.NewWithData(hd)
}

func GenHashID(salt string, id uint64) string {
	h, err := newHashID(salt)
	if err != nil {
		return ""
	}
	e, _ := h.EncodeInt64([]int64{int64(id)})
	return e
}

// DecodeHashID GenHashID 的逆过程
func DecodeHashID(salt string, code string) (uint64, error) {
	h, err := newHashID(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrInvalidHashID
	}
	return uint64(ids[0]), nil
}
