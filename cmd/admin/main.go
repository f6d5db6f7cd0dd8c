package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
	"golang.org/x/term"
)

const minPasscodeLength = 4

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "usage: %s hash-passcode\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.Arg(0) {
	case "hash-passcode":
		passcode := getPasscode()
		if passcode == "" {
			os.Exit(1)
		}

		hash, err := argon2id.DefaultHashPassword(passcode)
		if err != nil {
			logrus.WithError(err).Fatal("could not hash passcode")
		}

		fmt.Println(hash)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func getPasscode() string {
	for {
		_, _ = fmt.Fprint(os.Stderr, "Passcode: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			logrus.WithError(err).Fatal("could not read passcode")
		}
		_, _ = fmt.Fprintln(os.Stderr, "")

		passcode := strings.TrimRight(string(pwBytes), "\r\n")
		if passcode == "" {
			return ""
		}

		if len(passcode) < minPasscodeLength {
			_, _ = fmt.Fprintf(os.Stderr, "passcode must be %d or more characters\n", minPasscodeLength)
			continue
		}

		return passcode
	}
}
