package main

import (
	"github.com/givepool/donation-interceptor/domain"
)

// DefaultConfig defines the default config for the donation hook server.
var DefaultConfig = domain.Config{
	ServerAddress: ":9092",

	LoggerFilename:     "donation-hook.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding, X-Caller-Address",
		AllowedMethods: "HEAD, GET, POST",
		AllowedOrigin:  "*",
	},

	Donation: &domain.DonationConfig{
		CharityAddress:           "charity1",
		DefaultDonationBps:       1000, // 0.1%
		DefaultMinDonationAmount: 1000,
		DonationManagers:         []string{},
		Guardians:                []string{},
	},
}
