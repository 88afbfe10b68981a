package catalog

// DefaultCatalog returns the built-in app catalog. It is written to disk
// on first run and used as a fallback when the catalog file is unreadable.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryProductivity: {
			{
				Name:            "Google Docs",
				Package:         "com.google.android.apps.docs.editors.docs",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Google Sheets",
				Package:         "com.google.android.apps.docs.editors.sheets",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Google Slides",
				Package:         "com.google.android.apps.docs.editors.slides",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Microsoft Word",
				Package:         "com.microsoft.office.word",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Microsoft Excel",
				Package:         "com.microsoft.office.excel",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Microsoft PowerPoint",
				Package:         "com.microsoft.office.powerpoint",
				Category:        CategoryProductivity,
				TabletOptimized: true,
				StylusSupport:   true,
			},
		},
		CategoryCreative: {
			{
				Name:            "Adobe Photoshop Express",
				Package:         "com.adobe.psmobile",
				Category:        CategoryCreative,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Autodesk SketchBook",
				Package:         "com.adsk.sketchbook",
				Category:        CategoryCreative,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Canva",
				Package:         "com.canva.editor",
				Category:        CategoryCreative,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "Concepts",
				Package:         "com.tophatch.concepts",
				Category:        CategoryCreative,
				TabletOptimized: true,
				StylusSupport:   true,
			},
		},
		CategoryEntertainment: {
			{
				Name:            "Netflix",
				Package:         "com.netflix.mediaclient",
				Category:        CategoryEntertainment,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "Spotify",
				Package:         "com.spotify.music",
				Category:        CategoryEntertainment,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "YouTube",
				Package:         "com.google.android.youtube",
				Category:        CategoryEntertainment,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "VLC Media Player",
				Package:         "org.videolan.vlc",
				Category:        CategoryEntertainment,
				TabletOptimized: true,
				StylusSupport:   false,
			},
		},
		CategoryUtilities: {
			{
				Name:            "Google Keep",
				Package:         "com.google.android.keep",
				Category:        CategoryUtilities,
				TabletOptimized: true,
				StylusSupport:   true,
			},
			{
				Name:            "Google Calendar",
				Package:         "com.google.android.calendar",
				Category:        CategoryUtilities,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "Google Photos",
				Package:         "com.google.android.apps.photos",
				Category:        CategoryUtilities,
				TabletOptimized: true,
				StylusSupport:   false,
			},
			{
				Name:            "File Manager",
				Package:         "com.google.android.apps.nbu.files",
				Category:        CategoryUtilities,
				TabletOptimized: true,
				StylusSupport:   false,
			},
		},
	}
}
