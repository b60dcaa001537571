package services

import (
	"context"
	"fmt"
	"math/rand"
	"net/smtp"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planboard/model"
)

func LoadEmailConfig() (*model.EmailConfig, error) {
	// Load .env only for local runs; deployed environments set real env vars.
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &model.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}
	return config, nil
}

// IsEmailBlocked checks whether the email is temporarily blocked from
// requesting more reset codes. Expired blocks are removed on the way.
func IsEmailBlocked(ctx context.Context, fb *firestore.Client, email string) (bool, error) {
	blockedRef := fb.Collection("EmailBlocked").Doc(email)
	doc, err := blockedRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}

	data := doc.Data()
	expiresAt, ok := data["expiresAt"].(time.Time)
	if ok {
		if time.Now().Before(expiresAt) {
			return true, nil
		}
		if _, err := blockedRef.Delete(ctx); err != nil {
			return false, err
		}
	}
	return false, nil
}

// CheckAndBlockIfNeeded counts live reset codes for the email and blocks
// it for ten minutes once three are outstanding.
func CheckAndBlockIfNeeded(ctx context.Context, fb *firestore.Client, email string) (bool, error) {
	iter := fb.Collection("ResetRecords").Doc(email).Collection("Codes").Documents(ctx)
	defer iter.Stop()

	var live int
	now := time.Now()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return false, err
		}
		expiresAt, ok := doc.Data()["expiresat"].(time.Time)
		if !ok || now.Before(expiresAt) {
			live++
		}
	}

	if live >= 3 {
		if err := BlockEmail(ctx, fb, email); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func BlockEmail(ctx context.Context, fb *firestore.Client, email string) error {
	now := time.Now()
	blockData := map[string]interface{}{
		"email":     email,
		"createdAt": now,
		"expiresAt": now.Add(10 * time.Minute),
	}
	_, err := fb.Collection("EmailBlocked").Doc(email).Set(ctx, blockData)
	return err
}

func SaveResetRecord(ctx context.Context, fb *firestore.Client, record model.ResetRecord) error {
	_, err := fb.Collection("ResetRecords").
		Doc(record.Email).
		Collection("Codes").
		Doc(record.Reference).
		Set(ctx, record)
	return err
}

// FindResetRecord returns the newest unused, unexpired record matching
// the code, or nil when none matches.
func FindResetRecord(ctx context.Context, fb *firestore.Client, email, code string) (*firestore.DocumentSnapshot, error) {
	iter := fb.Collection("ResetRecords").Doc(email).Collection("Codes").
		Where("code", "==", code).
		Where("is_used", "==", "0").
		Documents(ctx)
	defer iter.Stop()

	now := time.Now()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		var rec model.ResetRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, err
		}
		if now.Before(rec.ExpiresAt) {
			return doc, nil
		}
	}
}

func GenerateCode(length int) string {
	var code strings.Builder
	for i := 0; i < length; i++ {
		code.WriteByte(byte('0' + rand.Intn(10)))
	}
	return code.String()
}

func GenerateReference(length int) string {
	const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	var ref strings.Builder
	for i := 0; i < length; i++ {
		ref.WriteByte(characters[rand.Intn(len(characters))])
	}
	return ref.String()
}

func ResetEmailContent(code, ref string) string {
	return `
        <table width="680px" cellpadding="0" cellspacing="0" border="0" bgcolor="#eeeeee">
          <tbody>
            <tr><td align="center" style="padding:24px"><h1>Planboard</h1></td></tr>
            <tr>
              <td align="center" bgcolor="#ffffff" style="padding:24px;font-family:Arial;line-height:24px">
                <span style="font-size:16px;color:#333333">Use the code below to reset your password.</span><br><br>
                <span style="font-size:18px;color:#cc0000;font-family:Arial">Code : <strong style="color:#000">` + code + `</strong></span><br>
                <span style="font-size:18px;color:#cc0000;font-family:Arial">Ref : <strong style="color:#000">` + ref + `</strong></span>
              </td>
            </tr>
            <tr><td height="24" style="font-size:0">&nbsp;</td></tr>
          </tbody>
        </table>
        `
}

func InvitationEmailContent(projectName, link string) string {
	return `
        <table width="680px" cellpadding="0" cellspacing="0" border="0" bgcolor="#eeeeee">
          <tbody>
            <tr><td align="center" style="padding:24px"><h1>Planboard</h1></td></tr>
            <tr>
              <td align="center" bgcolor="#ffffff" style="padding:24px;font-family:Arial;line-height:24px">
                <span style="font-size:16px;color:#333333">You have been invited to join <strong>` + projectName + `</strong>.</span><br><br>
                <a href="` + link + `" style="font-size:16px">Open invitation</a>
              </td>
            </tr>
            <tr><td height="24" style="font-size:0">&nbsp;</td></tr>
          </tbody>
        </table>
        `
}

func SendingEmail(to, subject, body string) error {
	config, err := LoadEmailConfig()
	if err != nil {
		return fmt.Errorf("config loading error: %w", err)
	}

	addr := config.Host + ":" + config.Port
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	from := config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}
