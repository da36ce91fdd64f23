package blockkit

import "fmt"

// FileExtension is a file type accepted by a FileInput element.
type FileExtension string

// Commonly used extensions. Any member of the platform's list validates.
const (
	FileExtensionAuto     FileExtension = "auto"
	FileExtensionText     FileExtension = "text"
	FileExtensionCSV      FileExtension = "csv"
	FileExtensionJSON     FileExtension = "json"
	FileExtensionPDF      FileExtension = "pdf"
	FileExtensionPNG      FileExtension = "png"
	FileExtensionJPG      FileExtension = "jpg"
	FileExtensionMarkdown FileExtension = "markdown"
	FileExtensionYAML     FileExtension = "yaml"
	FileExtensionZIP      FileExtension = "zip"
)

var knownFileExtensions = func() map[FileExtension]struct{} {
	names := []string{
		"auto", "text", "ai", "apk", "applescript", "binary", "bmp", "boxnote", "c", "csharp",
		"cpp", "css", "csv", "clojure", "coffeescript", "cfm", "d", "dart", "diff", "doc",
		"docx", "dockerfile", "dotx", "email", "eps", "epub", "erlang", "fla", "flv",
		"fsharp", "fortran", "gdoc", "gdraw", "gif", "go", "gpres", "groovy", "gsheet",
		"gzip", "html", "handlebars", "haskell", "haxe", "indd", "java", "javascript", "jpg",
		"json", "keynote", "kotlin", "latex", "lisp", "lua", "m4a", "markdown", "matlab",
		"mhtml", "mkv", "mov", "mp3", "mp4", "mpg", "mumps", "numbers", "nzb", "objc",
		"ocaml", "odg", "odi", "odp", "ods", "odt", "ogg", "ogv", "pages", "pascal", "pdf",
		"perl", "php", "pig", "png", "post", "powershell", "ppt", "pptx", "psd", "puppet",
		"python", "qtz", "r", "rtf", "ruby", "rust", "sql", "sass", "scala", "scheme",
		"sketch", "shell", "smalltalk", "svg", "swf", "swift", "tar", "tiff", "tsv", "vb",
		"vbscript", "vcard", "velocity", "verilog", "wav", "webm", "wmv", "xls", "xlsx",
		"xlsb", "xlsm", "xltx", "xml", "yaml", "zip",
	}
	m := make(map[FileExtension]struct{}, len(names))
	for _, n := range names {
		m[FileExtension(n)] = struct{}{}
	}
	return m
}()

// Validate checks if the FileExtension is one the platform recognises.
func (fe FileExtension) Validate() error {
	if _, ok := knownFileExtensions[fe]; !ok {
		return fmt.Errorf("unknown file extension: %q", fe)
	}
	return nil
}
