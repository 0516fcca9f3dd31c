package mail

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"
)

type BackupSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewBackupSender(host string, port int, user, password, from string) *BackupSender {
	return &BackupSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendBackup mails the export document to the account address as a JSON
// attachment, mirroring the manual download.
func (s *BackupSender) SendBackup(to string, doc []byte) error {
	date := time.Now().UTC().Format("2006-01-02")

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("CrescoFlow backup %s", date))
	m.SetBody("text/plain",
		"Attached is the full backup of your CrescoFlow database. "+
			"Keep it somewhere safe; it can be restored from the settings screen.")
	m.Attach(
		fmt.Sprintf("CrescoFlow_Backup_%s.json", date),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(doc)
			return err
		}),
	)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send backup mail: %w", err)
	}

	return nil
}
