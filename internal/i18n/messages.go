package i18n

var catalog = map[string]map[string]string{
	"en": {
		"user.created":              "User has been created",
		"user.restored":             "User has been restored",
		"user.updated":              "User has been updated",
		"user.deleted":              "User deleted",
		"user.not_found":            "User not found",
		"user.email_used":           "Email has been used, please try with another email",
		"user.username_used":        "Username has been used, please try with another username",
		"user.phone_used":           "Mobile phone has been used",
		"user.create_failed":        "Cant create user, please contact support",
		"user.update_failed":        "Cant update user, please contact support",
		"user.delete_failed":        "Cant delete user, please contact support",
		"user.list_failed":          "Cant get data user, please contact support",
		"user.detail_failed":        "Cant get detail user, please contact support",
		"user.bulk_created":         "%d user(s) created, %d user(s) restored from trash",
		"user.bulk_updated":         "%d of %d user(s) updated",
		"user.bulk_deleted":         "%d user(s) deleted",
		"user.banned":               "User has been banned",
		"user.unbanned":             "User has been unbanned",
		"user.ban_failed":           "Cant banned user, please contact support",
		"user.password_updated":     "User password has been updated",
		"user.password_failed":      "Cant force update user password, please contact support",
		"user.invalid_input":        "Invalid input",
		"auth.wrong_password":       "Wrong password",
		"auth.email_not_registered": "Your email is not registered",
		"auth.login_failed":         "Cant login, please contact support",
		"auth.logged_out":           "Logged out",
		"auth.registered":           "Registration successfully, please check your email for activation your account",
		"auth.register_failed":      "Failed to register your account, please contact support",
		"auth.email_not_found":      "Email not found",
		"auth.already_active":       "Your account is active",
		"auth.resent":               "Successfully resend email register, please check your email for activation your account",
		"auth.resend_failed":        "Failed to resend registration code, please contact support",
		"auth.registration_expired": "Your registration has expired",
		"auth.account_not_found":    "Your account not found",
		"auth.verified":             "Successfully activated your account",
		"auth.verify_failed":        "Failed to verify your account, please contact support",
		"auth.old_password_missing": "Please insert old password",
		"auth.old_password_wrong":   "Old password is wrong",
		"auth.password_mismatch":    "New password and confirmation password not same",
		"auth.password_changed":     "Change password has been successfully",
		"auth.password_failed":      "Failed to change your password, please contact support",
		"auth.forgot_sent":          "A link to change your password has been successfully sent to your email",
		"auth.forgot_failed":        "Failed to send email forgot password, please contact support",
		"auth.token_expired":        "Token has been expired",
		"auth.password_reset":       "Your password has been set with new password",
		"auth.reset_failed":         "Cant reset your password, please contact support",
		"auth.autologin_sent":       "Url has been sent to your email",
		"auth.autologin_failed":     "Cant generate token, please contact support",
		"auth.sms_sent":             "Verification code has been sent",
		"auth.sms_failed":           "Can not Send verification code, please contact support",
		"auth.sms_undelivered":      "Can not send SMS, please resend login code with email",
		"auth.sms_login_failed":     "Cant login with code, please contact support",
		"auth.phone_not_found":      "Mobile phone not found",
		"sms.login_code":            "Your Pro login, your code is %s",
		"auth.token_invalid":        "Token is not valid",
		"auth.login_success":        "Login Successfully",
		"auth.profile_updated":      "Profile has been updated",
		"auth.profile_failed":       "Failed to update profile, please contact support",
		"auth.unauthorized":         "Unauthorized",
		"auth.forbidden":            "You are not allowed to access this resource",
		"category.created":          "New Category has been created",
		"category.updated":          "Category has been updated",
		"category.deleted":          "Category has been deleted",
		"category.not_found":        "Category not found",
		"category.failed":           "Cant process category, please contact support",
		"category.bulk_created":     "%d category(s) created",
		"category.bulk_updated":     "%d category(s) updated",
		"category.reordered":        "Reorder has been successfully",
		"article.created":           "New Article has been created",
		"article.updated":           "Article has been updated",
		"article.deleted":           "Article has been deleted",
		"article.not_found":         "Article not found",
		"article.failed":            "Cant process article, please contact support",
		"article.bulk_created":      "%d article(s) created",
		"article.bulk_updated":      "%d article(s) updated",
		"article.reordered":         "Reorder has been successfully",
		"file.uploaded":             "File has been uploads",
		"file.upload_failed":        "Cant upload file, please contact support",
		"file.not_found":            "File not found",
		"mail.verify_subject":       "Activate your account",
		"mail.forgot_subject":       "Reset your password",
		"mail.autologin_subject":    "Your login link",
		"mail.greeting":             "Hello %s,",
		"mail.verify_body":          "Thanks for registering. Confirm your email address to activate your account.",
		"mail.verify_button":        "Activate account",
		"mail.forgot_body":          "We received a request to reset the password for %s.",
		"mail.forgot_button":        "Reset password",
		"mail.autologin_body":       "Use the link below to sign in to your account.",
		"mail.autologin_button":     "Sign in",
		"mail.ignore":               "If you did not request this, you can ignore this email.",
	},
	"no": {
		"user.created":              "Brukeren er opprettet",
		"user.restored":             "Brukeren er gjenopprettet",
		"user.updated":              "Brukeren er oppdatert",
		"user.deleted":              "Brukeren er slettet",
		"user.not_found":            "Fant ikke brukeren",
		"user.email_used":           "E-postadressen er i bruk, prøv en annen",
		"user.username_used":        "Brukernavnet er i bruk, prøv et annet",
		"user.phone_used":           "Mobilnummeret er i bruk",
		"user.create_failed":        "Kan ikke opprette brukeren, kontakt support",
		"user.update_failed":        "Kan ikke oppdatere brukeren, kontakt support",
		"user.delete_failed":        "Kan ikke slette brukeren, kontakt support",
		"user.list_failed":          "Kan ikke hente brukere, kontakt support",
		"user.detail_failed":        "Kan ikke hente brukeren, kontakt support",
		"user.bulk_created":         "%d bruker(e) opprettet, %d bruker(e) gjenopprettet fra papirkurven",
		"user.bulk_updated":         "%d av %d bruker(e) oppdatert",
		"user.bulk_deleted":         "%d bruker(e) slettet",
		"user.banned":               "Brukeren er utestengt",
		"user.unbanned":             "Utestengelsen er opphevet",
		"user.ban_failed":           "Kan ikke utestenge brukeren, kontakt support",
		"user.password_updated":     "Passordet er oppdatert",
		"user.password_failed":      "Kan ikke oppdatere passordet, kontakt support",
		"user.invalid_input":        "Ugyldig input",
		"auth.wrong_password":       "Feil passord",
		"auth.email_not_registered": "E-postadressen er ikke registrert",
		"auth.login_failed":         "Kan ikke logge inn, kontakt support",
		"auth.logged_out":           "Logget ut",
		"auth.registered":           "Registreringen er fullført, sjekk e-posten din for å aktivere kontoen",
		"auth.register_failed":      "Kan ikke registrere kontoen, kontakt support",
		"auth.email_not_found":      "Fant ikke e-postadressen",
		"auth.already_active":       "Kontoen din er aktiv",
		"auth.resent":               "Aktiveringse-posten er sendt på nytt",
		"auth.resend_failed":        "Kan ikke sende aktiveringskoden på nytt, kontakt support",
		"auth.registration_expired": "Registreringen din har utløpt",
		"auth.account_not_found":    "Fant ikke kontoen din",
		"auth.verified":             "Kontoen din er aktivert",
		"auth.verify_failed":        "Kan ikke bekrefte kontoen, kontakt support",
		"auth.old_password_missing": "Skriv inn det gamle passordet",
		"auth.old_password_wrong":   "Det gamle passordet er feil",
		"auth.password_mismatch":    "Nytt passord og bekreftelsen er ikke like",
		"auth.password_changed":     "Passordet er endret",
		"auth.password_failed":      "Kan ikke endre passordet, kontakt support",
		"auth.forgot_sent":          "En lenke for å endre passordet er sendt til e-posten din",
		"auth.forgot_failed":        "Kan ikke sende e-post for glemt passord, kontakt support",
		"auth.token_expired":        "Tokenet har utløpt",
		"auth.password_reset":       "Passordet ditt er satt",
		"auth.reset_failed":         "Kan ikke tilbakestille passordet, kontakt support",
		"auth.autologin_sent":       "Lenken er sendt til e-posten din",
		"auth.autologin_failed":     "Kan ikke lage token, kontakt support",
		"auth.sms_sent":             "Bekreftelseskoden er sendt",
		"auth.sms_failed":           "Kan ikke sende bekreftelseskoden, kontakt support",
		"auth.sms_undelivered":      "Kan ikke sende SMS, be om innloggingskoden på e-post",
		"auth.sms_login_failed":     "Kan ikke logge inn med koden, kontakt support",
		"auth.phone_not_found":      "Fant ikke mobilnummeret",
		"sms.login_code":            "Din Pro-innlogging, koden din er %s",
		"auth.token_invalid":        "Tokenet er ugyldig",
		"auth.login_success":        "Innlogging vellykket",
		"auth.profile_updated":      "Profilen er oppdatert",
		"auth.profile_failed":       "Kan ikke oppdatere profilen, kontakt support",
		"auth.unauthorized":         "Ikke autorisert",
		"auth.forbidden":            "Du har ikke tilgang til denne ressursen",
		"category.created":          "Ny kategori er opprettet",
		"category.updated":          "Kategorien er oppdatert",
		"category.deleted":          "Kategorien er slettet",
		"category.not_found":        "Fant ikke kategorien",
		"category.failed":           "Kan ikke behandle kategorien, kontakt support",
		"category.bulk_created":     "%d kategori(er) opprettet",
		"category.bulk_updated":     "%d kategori(er) oppdatert",
		"category.reordered":        "Rekkefølgen er oppdatert",
		"article.created":           "Ny artikkel er opprettet",
		"article.updated":           "Artikkelen er oppdatert",
		"article.deleted":           "Artikkelen er slettet",
		"article.not_found":         "Fant ikke artikkelen",
		"article.failed":            "Kan ikke behandle artikkelen, kontakt support",
		"article.bulk_created":      "%d artikkel(er) opprettet",
		"article.bulk_updated":      "%d artikkel(er) oppdatert",
		"article.reordered":         "Rekkefølgen er oppdatert",
		"file.uploaded":             "Filen er lastet opp",
		"file.upload_failed":        "Kan ikke laste opp filen, kontakt support",
		"file.not_found":            "Fant ikke filen",
		"mail.verify_subject":       "Aktiver kontoen din",
		"mail.forgot_subject":       "Tilbakestill passordet ditt",
		"mail.autologin_subject":    "Din innloggingslenke",
		"mail.greeting":             "Hei %s,",
		"mail.verify_body":          "Takk for at du registrerte deg. Bekreft e-postadressen din for å aktivere kontoen.",
		"mail.verify_button":        "Aktiver konto",
		"mail.forgot_body":          "Vi har mottatt en forespørsel om å tilbakestille passordet for %s.",
		"mail.forgot_button":        "Tilbakestill passord",
		"mail.autologin_body":       "Bruk lenken under for å logge inn på kontoen din.",
		"mail.autologin_button":     "Logg inn",
		"mail.ignore":               "Hvis du ikke ba om dette, kan du se bort fra denne e-posten.",
	},
}
