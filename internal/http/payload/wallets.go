package payload

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// maxAssessWallets bounds a single API assessment run.
const maxAssessWallets = 100

var errNotAnAddress = errors.New("must be a 0x prefixed 20 byte hex address")

var hexAddress = validation.By(func(value any) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errNotAnAddress
	}
	return nil
})

type AssessRequest struct {
	Wallets []string `json:"wallets"`
}

func (a AssessRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Wallets,
			validation.Required,
			validation.Length(1, maxAssessWallets),
			validation.Each(validation.Required, hexAddress)),
	)
}

// WalletRequest carries the {wallet} path value.
type WalletRequest struct {
	Wallet string
}

func (w WalletRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Wallet, validation.Required, hexAddress),
	)
}
