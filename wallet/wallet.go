// Package wallet generates the key pairs used to address transaction outputs
// and to fill the signature field of transaction inputs. The ledger treats
// both as opaque strings.
package wallet

import (
	"encoding/hex"
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/schnorr"
	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/minichain/common"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// KeyPair is an Ed25519 scalar and its public point.
type KeyPair struct {
	Private kyber.Scalar
	Public  kyber.Point
}

// NewKeyPair picks a random private scalar and derives its public point.
func NewKeyPair() KeyPair {
	x := suite.Scalar().Pick(suite.RandomStream())
	return KeyPair{
		Private: x,
		Public:  suite.Point().Mul(x, nil),
	}
}

// Address returns the hex SHA256 of the hex encoded public key.
func (k KeyPair) Address() (string, error) {
	pub, err := k.Public.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to marshal public key: %w", err)
	}
	return common.HashFields(hex.EncodeToString(pub)), nil
}

// Sign returns a hex encoded Schnorr signature of msg.
func (k KeyPair) Sign(msg []byte) (string, error) {
	sig, err := schnorr.Sign(suite, k.Private, msg)
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return hex.EncodeToString(sig), nil
}

// Verify checks a signature produced by Sign against the key pair's public
// point.
func (k KeyPair) Verify(msg []byte, signature string) error {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("invalid signature encoding: %w", err)
	}
	return schnorr.Verify(suite, k.Public, msg, sig)
}
