// utils/providers.go
package utils

import (
	"fmt"
	"net/url"
	"strings"

	"sniperlink/models"
)

// ProviderOptions tunes how the provider catalog builds its links
type ProviderOptions struct {
	// AndroidPlayStoreFallback sends Android users without the app to the
	// Play Store listing instead of the provider's web client.
	AndroidPlayStoreFallback bool
}

// DefaultProviders returns the built-in provider catalog
func DefaultProviders(opts ProviderOptions) []*models.Provider {
	android := func(packageName, webURL string) models.LinkBuilder {
		fallback := webURL
		if opts.AndroidPlayStoreFallback {
			fallback = PlayStoreURL(packageName)
		}
		link := AndroidIntentURL(packageName, fallback)
		return func(models.LinkParams) string { return link }
	}

	return []*models.Provider{
		{
			ID:          models.ProviderGmail,
			DisplayName: "Gmail",
			Domains:     []string{"gmail.com", "googlemail.com", "google.com"},
			Desktop: func(p models.LinkParams) string {
				return fmt.Sprintf(
					"https://mail.google.com/mail/u/%s/#search/from%%3A(%s)+in%%3Aanywhere+newer_than%%3A1h",
					EncodeURIComponent(p.Recipient),
					EncodeURIComponent(p.Sender),
				)
			},
			IOS:     constantLink("googlegmail://"),
			Android: android("com.google.android.gm", "https://mail.google.com/"),
		},
		{
			ID:          models.ProviderYahoo,
			DisplayName: "Yahoo Mail",
			Domains: []string{
				"yahoo.com",
				"myyahoo.com",
				"yahoo.co.uk",
				"yahoo.fr",
				"yahoo.it",
				"ymail.com",
				"rocketmail.com",
			},
			Desktop: func(p models.LinkParams) string {
				return "https://mail.yahoo.com/d/search/keyword=from:" + EncodeURIComponent(p.Sender)
			},
			IOS:     constantLink("ymail://"),
			Android: android("com.yahoo.mobile.client.android.mail", "https://mail.yahoo.com/"),
		},
		{
			ID:          models.ProviderMicrosoft,
			DisplayName: "Outlook",
			Domains: []string{
				"outlook.com",
				"live.com",
				"live.de",
				"hotmail.com",
				"hotmail.co.uk",
				"hotmail.de",
				"msn.com",
				"passport.com",
				"passport.net",
			},
			Desktop: func(p models.LinkParams) string {
				return withQueryParam("https://outlook.live.com/mail/", "login_hint", p.Recipient)
			},
			IOS: func(p models.LinkParams) string {
				return "ms-outlook://search?querytext=" + EncodeURIComponent(p.Sender)
			},
			Android: android("com.microsoft.office.outlook", "https://outlook.live.com/"),
		},
		{
			ID:          models.ProviderProton,
			DisplayName: "Proton Mail",
			Domains:     []string{"proton.me", "pm.me", "protonmail.com", "protonmail.ch"},
			Desktop: func(p models.LinkParams) string {
				return "https://mail.proton.me/u/0/all-mail#from=" + EncodeURIComponent(p.Sender)
			},
			IOS:     constantLink("protonmail://"),
			Android: android("ch.protonmail.android", "https://mail.proton.me/"),
		},
		{
			// No native Android client, the web app is used everywhere but iOS
			ID:          models.ProviderICloud,
			DisplayName: "iCloud Mail",
			Domains:     []string{"icloud.com", "me.com", "mac.com"},
			Desktop:     constantLink("https://www.icloud.com/mail"),
			IOS:         constantLink("message://"),
			Android:     constantLink("https://www.icloud.com/mail"),
		},
		{
			ID:          models.ProviderHey,
			DisplayName: "HEY",
			Domains:     []string{"hey.com"},
			Desktop:     constantLink("https://app.hey.com/topics/everything"),
			Android:     android("com.basecamp.hey", "https://app.hey.com/"),
		},
		{
			ID:          models.ProviderAOL,
			DisplayName: "AOL",
			Domains:     []string{"aol.com"},
			Desktop: func(p models.LinkParams) string {
				return "https://mail.aol.com/d/search/keyword=from:" + EncodeURIComponent(p.Sender)
			},
			Android: android("com.aol.mobile.aolapp", "https://mail.aol.com/"),
		},
		{
			ID:          models.ProviderMailRu,
			DisplayName: "Mail.ru",
			Domains:     []string{"mail.ru"},
			Desktop: func(p models.LinkParams) string {
				return withQueryParam("https://e.mail.ru/search/", "q_from", p.Sender)
			},
			Android: android("ru.mail.mailapp", "https://e.mail.ru/"),
		},
	}
}

// AndroidIntentURL creates a Chrome intent URL which opens a package by its ID
// or hits the fallback URL when the app is not installed.
// https://developer.chrome.com/docs/android/intents
func AndroidIntentURL(packageName, fallbackURL string) string {
	return "intent:#Intent;action=android.intent.action.MAIN;category=android.intent.category.LAUNCHER;launchFlags=0x10000000;package=" +
		packageName + ";S.browser_fallback_url=" + EncodeURIComponent(fallbackURL) + ";end"
}

// PlayStoreURL returns the store listing of an Android package
func PlayStoreURL(packageName string) string {
	return withQueryParam("https://play.google.com/store/apps/details", "id", packageName)
}

// EncodeURIComponent percent-encodes s for use inside a URL component.
// Spaces become %20 rather than the form-encoded '+'.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func withQueryParam(base, key, value string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

func constantLink(link string) models.LinkBuilder {
	return func(models.LinkParams) string { return link }
}
