// Package urls holds the Neviweb service endpoints and the documentation links
// shown in troubleshooting output.
//
//	import "github.com/MartinRain/sinope-130/internal/urls"
//
//	fmt.Printf("See %s\n", urls.TroubleshootingGuide)
package urls
