// Command literate is a small CLI front-end exercising the library's
// ciphers, hashes, and signature primitives end to end.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redeaux-corp/literate-crypto/cipher/block"
	"github.com/redeaux-corp/literate-crypto/cipher/block/modes"
	"github.com/redeaux-corp/literate-crypto/hash/sha1"
	"github.com/redeaux-corp/literate-crypto/hash/sha2"
	"github.com/redeaux-corp/literate-crypto/hash/sha3"
	"github.com/redeaux-corp/literate-crypto/mac/hmac"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc/ecdsa"
	"github.com/redeaux-corp/literate-crypto/pubkey/ecc/schnorr"
)

func main() {
	hashFlag := flag.String("hash", "", "digest a string with sha1, sha256, sha3-256, or sha3-512")
	encryptFlag := flag.String("aes-ctr", "", "encrypt a string with AES-128-CTR under a random key/nonce, print hex")
	signFlag := flag.String("ecdsa-sign", "", "sign a string with a throwaway secp256k1 key, print (r,s) and the pubkey")
	schnorrFlag := flag.String("schnorr-sign", "", "sign a string with Schnorr over secp256k1, print (s,e) and the pubkey")
	flag.Parse()

	switch {
	case *hashFlag != "":
		runHash(*hashFlag)
	case *encryptFlag != "":
		runEncrypt(*encryptFlag)
	case *signFlag != "":
		runECDSA(*signFlag)
	case *schnorrFlag != "":
		runSchnorr(*schnorrFlag)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runHash(algo string) {
	msg := flag.Arg(0)
	if msg == "" {
		log.Fatal("usage: literate -hash=<algo> <message>")
	}
	data := []byte(msg)

	var digest []byte
	switch algo {
	case "sha1":
		digest = sha1.New().Sum(data)
	case "sha256":
		digest = sha2.NewSHA256().Sum(data)
	case "sha3-256":
		digest = sha3.New256().Sum(data)
	case "sha3-512":
		digest = sha3.New512().Sum(data)
	default:
		log.Fatalf("unknown hash %q", algo)
	}
	fmt.Println(hex.EncodeToString(digest))

	mac := hmac.Sum(sha2.NewSHA256(), []byte("demo-key"), data)
	fmt.Println("hmac-sha256:", hex.EncodeToString(mac))
}

func runEncrypt(plaintext string) {
	key := randomBytes(block.AES128KeySize)
	nonce := randomUint64()

	cipher := block.NewAES(key)
	ctr, err := modes.NewCTR(cipher, nonce)
	if err != nil {
		log.Fatal(err)
	}
	ciphertext := ctr.Encrypt([]byte(plaintext))

	fmt.Println("key:", hex.EncodeToString(key))
	fmt.Println("ciphertext:", hex.EncodeToString(ciphertext))

	ctr2, _ := modes.NewCTR(block.NewAES(key), nonce)
	fmt.Println("decrypted:", string(ctr2.Decrypt(ciphertext)))
}

func runECDSA(msg string) {
	priv := ecc.NumFromBytes(randomBytes(32))
	pub := ecc.G.Mul(priv)

	sig, err := ecdsa.Sign(sha3.New256(), priv, []byte(msg))
	if err != nil {
		log.Fatal(err)
	}
	rBytes, sBytes, pubX := sig.R.Bytes(), sig.S.Bytes(), pub.X.Bytes()
	fmt.Println("pubkey.x:", hex.EncodeToString(pubX[:]))
	fmt.Println("r:", hex.EncodeToString(rBytes[:]))
	fmt.Println("s:", hex.EncodeToString(sBytes[:]))

	if err := ecdsa.Verify(sha3.New256(), pub, []byte(msg), sig); err != nil {
		log.Fatalf("self-check failed: %v", err)
	}
	fmt.Println("verify: ok")
}

func runSchnorr(msg string) {
	priv := ecc.NumFromBytes(randomBytes(32))
	pub := ecc.G.Mul(priv)

	sig := schnorr.Sign(sha3.New256(), priv, []byte(msg), func() ecc.Num {
		return ecc.NumFromBytes(randomBytes(32))
	})
	sBytes, eBytes, pubX := sig.S.Bytes(), sig.E.Bytes(), pub.X.Bytes()
	fmt.Println("pubkey.x:", hex.EncodeToString(pubX[:]))
	fmt.Println("s:", hex.EncodeToString(sBytes[:]))
	fmt.Println("e:", hex.EncodeToString(eBytes[:]))

	if err := schnorr.Verify(sha3.New256(), pub, []byte(msg), sig); err != nil {
		log.Fatalf("self-check failed: %v", err)
	}
	fmt.Println("verify: ok")
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatal(err)
	}
	return b
}

func randomUint64() uint64 {
	b := randomBytes(8)
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}
