package metadata

import "strings"

// FileExtension is appended to mapped class names
const FileExtension = ".xml"

var classSeparators = strings.NewReplacer(`\`, ".", "/", ".")

// ClassFilename maps a class identifier to the name of its metadata document.
// Namespace separators, backslash or slash, become dots:
//
//	ClassFilename(`App\Entity\Article`) // "App.Entity.Article.xml"
//	ClassFilename("app/blog.Post")      // "app.blog.Post.xml"
func ClassFilename(className string) string {
	return classSeparators.Replace(className) + FileExtension
}
