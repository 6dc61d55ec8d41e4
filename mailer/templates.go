package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/SudhitaReddy/Smart-Book/models"
)

func OrderConfirmation(order *models.Order, user *models.User) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s × %d</li>", item.Title, item.Quantity)
	}
	return fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; max-width:600px; margin:auto; border:1px solid #ddd; border-radius:8px;">
    <div style="background:#4CAF50; color:#fff; padding:20px; text-align:center;">
      <h1>Order Confirmed</h1>
    </div>
    <div style="padding:20px;">
      <p>Hi %s,</p>
      <p>Your order <b>%s</b> has been placed successfully.</p>
      <p><b>Total:</b> &#8377;%.2f</p>
      <h3>Items:</h3>
      <ul>%s</ul>
      <p>We'll notify you when your order is shipped.</p>
    </div>
    <div style="background:#f4f4f4; text-align:center; padding:10px; font-size:12px; color:#555;">
      &copy; %d Smart Book. All rights reserved.
    </div>
  </div>`, user.Name, order.OrderNumber, order.TotalAmount, items.String(), time.Now().Year())
}

func OTPEmail(code string) string {
	return fmt.Sprintf("<p>Your SmartBook OTP is <b>%s</b>. It is valid for 5 minutes.</p>", code)
}

func PasswordReset(name, resetURL string) string {
	return fmt.Sprintf(`
      <h2>Password Reset Request</h2>
      <p>Hello %s,</p>
      <p>You requested to reset your password. Click below to reset:</p>
      <a href="%s" target="_blank">Reset Password</a>
      <p>This link will expire in 15 minutes.</p>
      <p>If you did not request this, you can ignore this email.</p>`, name, resetURL)
}

func SellerRequestReceived(name string) string {
	return fmt.Sprintf(`
          <h3>Hi %s,</h3>
          <p>Thank you for applying to become a seller.</p>
          <p>Your request is <b>pending review</b>.</p>`, name)
}

func SellerRequestApproved(name, dashboardURL string) string {
	return fmt.Sprintf(`
          <h3>Hello %s,</h3>
          <p>Your seller request has been <b>approved</b>.</p>
          <p>You can now access your <a href="%s">Seller Dashboard</a>.</p>`, name, dashboardURL)
}

func SellerRequestRejected(name, reason string) string {
	if reason == "" {
		reason = "Not specified"
	}
	return fmt.Sprintf(`
          <h3>Hello %s,</h3>
          <p>Unfortunately, your seller request was <b>rejected</b>.</p>
          <p>Reason: %s</p>`, name, reason)
}

func ContactNotice(msg *models.ContactMessage) string {
	return fmt.Sprintf(`
          <h3>New Contact Us Message</h3>
          <p><b>Name:</b> %s</p>
          <p><b>Email:</b> %s</p>
          <p><b>Subject:</b> %s</p>
          <p><b>Message:</b> %s</p>`, msg.Name, msg.Email, msg.Subject, msg.Message)
}

func ContactReceipt(msg *models.ContactMessage) string {
	return fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>Thanks for contacting us. We have received your message:</p>
        <blockquote>%s</blockquote>
        <p>Our support team will get back to you soon.</p>`, msg.Name, msg.Message)
}

func CartReminder(user *models.User, itemCount int) string {
	return fmt.Sprintf(`
      <h3>Hi %s,</h3>
      <p>You left %d item(s) in your cart.</p>
      <p>They are still waiting for you - complete your order before they go out of stock.</p>`, user.Name, itemCount)
}
