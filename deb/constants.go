package deb

// ControlField represents a standard field in a Debian control file.
type ControlField string

const (
	FieldPackage      ControlField = "Package"
	FieldVersion      ControlField = "Version"
	FieldArchitecture ControlField = "Architecture"
	FieldMaintainer   ControlField = "Maintainer"
	FieldDescription  ControlField = "Description"
	FieldSection      ControlField = "Section"
	FieldPriority     ControlField = "Priority"
	FieldHomepage     ControlField = "Homepage"
	FieldDepends      ControlField = "Depends"
	FieldSource       ControlField = "Source"
)

// requiredFields are the control fields every binary package must carry.
// Their presence is checked case-insensitively.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#binary-package-control-files-debian-control
var requiredFields = [...]ControlField{FieldPackage, FieldVersion, FieldArchitecture}

// ControlFile represents a standard file found in the control archive.
type ControlFile string

const (
	FileControl   ControlFile = "control"
	FileMd5sums   ControlFile = "md5sums"
	FileConffiles ControlFile = "conffiles"
)

// PackageFile represents a standard member of the .deb archive (ar format).
type PackageFile string

const (
	PkgDebianBinary  PackageFile = "debian-binary"
	PkgControlTarGz  PackageFile = "control.tar.gz"
	PkgControlTarXz  PackageFile = "control.tar.xz"
	PkgControlTarZst PackageFile = "control.tar.zst"
	PkgDataTarGz     PackageFile = "data.tar.gz"
)

// controlMembers lists the recognized control archive members in priority
// order. A well-formed .deb contains exactly one; if more are present the
// first match wins.
var controlMembers = [...]PackageFile{PkgControlTarGz, PkgControlTarXz, PkgControlTarZst}
