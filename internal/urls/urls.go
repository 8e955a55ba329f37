package urls

// Host is the Neviweb cloud service root.
const Host = "https://neviweb.com"

// Login is the session endpoint used to validate account credentials.
const Login = Host + "/api/login"

// IntegrationDocs is the neviweb130 integration README, covering the
// configuration keys written by the setup and options wizards.
const IntegrationDocs = "https://github.com/claudegel/sinope-130#readme"

// TroubleshootingGuide lists the common login failures (locked accounts,
// too many sessions, service maintenance).
const TroubleshootingGuide = "https://github.com/claudegel/sinope-130#troubleshooting"

// PasswordReset is the Neviweb page for recovering a forgotten password.
const PasswordReset = Host + "/#/forgot-password"
