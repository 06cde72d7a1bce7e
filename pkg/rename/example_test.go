package rename_test

import (
	"fmt"

	"github.com/walteh/remime/pkg/rename"
)

func ExampleRewrite() {
	ext := rename.NormalizeExtension(".png")

	fmt.Println(rename.Rewrite("photo.jpeg", ext, rename.PolicySmart))
	fmt.Println(rename.Rewrite("archive.tar.gz", ext, rename.PolicySmart))
	fmt.Println(rename.Rewrite("notes", ext, rename.PolicySmart))
	fmt.Println(rename.Rewrite("", ext, rename.PolicyForce))

	// Output:
	// photo.png
	// archive.tar.png
	// notes.png
	// file.png
}

func ExampleNormalizeExtension() {
	fmt.Printf("%q\n", rename.NormalizeExtension(".pdf"))
	fmt.Printf("%q\n", rename.NormalizeExtension("pdf"))
	fmt.Printf("%q\n", rename.NormalizeExtension(""))

	// Output:
	// "pdf"
	// "pdf"
	// ""
}
