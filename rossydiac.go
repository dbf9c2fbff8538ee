// Package rossydiac is the bidirectional transcoder between MSG (a
// line-oriented robotics middleware interface-definition language) and
// DTP (an XML-based IEC-style structured-type description). Everything
// outside the two entry points below — CLI parsing, file I/O, logging,
// exit-code classification — is a thin collaborator layered on top.
package rossydiac

import (
	"github.com/N1CEJAN/RossyDiac/core/dtpconv"
	"github.com/N1CEJAN/RossyDiac/core/mapper"
	"github.com/N1CEJAN/RossyDiac/core/msgconv"
)

// ConvertToDtp parses msgText (the contents of a MSG file whose logical
// file stem is sourceName) and lowers it into a DTP XML document scoped
// to packageName. outputName is the DtpType name the caller should use
// when naming the written file.
func ConvertToDtp(msgText []byte, sourceName, packageName string) (dtpXML []byte, outputName string, err error) {
	msgType, err := msgconv.Parse(msgText, sourceName)
	if err != nil {
		return nil, "", err
	}
	dtpType, err := mapper.MsgToDtp(packageName, msgType, mapper.DefaultOptions())
	if err != nil {
		return nil, "", err
	}
	return dtpconv.Write(dtpType), dtpType.Name, nil
}

// ConvertToMsg parses dtpXML (the contents of a DTP file) and lifts it
// into MSG text scoped to packageName. outputName is the MsgType name
// the caller should use when naming the written file.
func ConvertToMsg(dtpXML []byte, packageName string) (msgText []byte, outputName string, err error) {
	dtpType, err := dtpconv.Parse(dtpXML)
	if err != nil {
		return nil, "", err
	}
	msgType, err := mapper.DtpToMsg(packageName, dtpType, mapper.DefaultOptions())
	if err != nil {
		return nil, "", err
	}
	return msgconv.Write(msgType), msgType.Name, nil
}
