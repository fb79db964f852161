// Command cipherlab generates an RSA key pair and runs a message
// through an encrypt/decrypt round trip, logging each stage.
package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	cipherlab "github.com/tOtiana23/cipherlab-go"
)

func main() {
	bits := flag.Int("bits", 512, "bit length of each prime")
	message := flag.String("message", "Hi", "message to encrypt")
	randomE := flag.Bool("random-exponent", false, "pick a random public exponent instead of 65537")
	timeout := flag.Duration("timeout", 2*time.Minute, "key generation timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var opts []cipherlab.KeyOption
	if *randomE {
		opts = append(opts, cipherlab.WithRandomExponent())
	}

	log.WithField("prime_bits", *bits).Info("generating key pair")
	start := time.Now()
	kp, err := cipherlab.GenerateKeyPair(ctx, *bits, opts...)
	if err != nil {
		log.WithError(err).Fatal("key generation failed")
	}
	log.WithFields(log.Fields{
		"fingerprint":  kp.Fingerprint(),
		"modulus_bits": kp.N.BitLen(),
		"e":            kp.E,
		"elapsed":      time.Since(start).Round(time.Millisecond),
	}).Info("key pair ready")

	pub, priv := kp.Public(), kp.Private()

	c, err := pub.Encrypt(*message)
	if err != nil {
		log.WithError(err).Fatal("encryption failed")
	}
	log.WithField("ciphertext", c.Text(16)).Info("message encrypted")

	plain, err := priv.Decrypt(c)
	if err != nil {
		log.WithError(err).Fatal("decryption failed")
	}
	log.WithField("plaintext", plain).Info("message decrypted")

	if plain != *message {
		log.Fatal("round trip mismatch")
	}
}
